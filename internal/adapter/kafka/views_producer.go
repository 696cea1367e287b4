package kafka

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/niksmo/saree-landing/internal/core/port"
	"github.com/niksmo/saree-landing/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.LandingViewProducer = (*ViewsProducer)(nil)

const flushTimeout = 5 * time.Second

// ViewsProducer publishes landing page views without waiting for acks.
type ViewsProducer struct {
	cl      ProducerClient
	encoder Encoder
}

func NewViewsProducer(opts ...ProducerOpt) (ViewsProducer, error) {
	const op = "NewViewsProducer"

	if len(opts) != 2 {
		return ViewsProducer{}, opErr(ErrTooFewOpts, op)
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ViewsProducer{}, opErr(err, op)
		}
	}
	return ViewsProducer{options.cl, options.encoder}, nil
}

func (p ViewsProducer) ProduceView(
	ctx context.Context, v domain.LandingView,
) error {
	const op = "ViewsProducer.ProduceView"

	if err := ctx.Err(); err != nil {
		return opErr(err, op)
	}

	value, err := p.encoder.Encode(p.toSchema(v))
	if err != nil {
		return opErr(err, op)
	}

	r := &kgo.Record{Value: value, Timestamp: v.ViewedAt}
	p.cl.Produce(context.WithoutCancel(ctx), r, p.onProduced)
	return nil
}

func (p ViewsProducer) onProduced(_ *kgo.Record, err error) {
	const op = "ViewsProducer.onProduced"
	if err != nil {
		slog.Error("failed to produce landing view", "op", op, "err", err)
	}
}

func (p ViewsProducer) Close() {
	const op = "ViewsProducer.Close"
	log := slog.With("op", op)

	log.Info("closing producer...")

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.cl.Flush(ctx); err != nil {
		log.Error("failed to flush pending views", "err", err)
	}
	p.cl.Close()

	log.Info("producer is closed")
}

func (p ViewsProducer) toSchema(v domain.LandingView) (s schema.LandingViewV1) {
	s.ProductsShown = v.ProductsShown
	s.CategoriesShown = v.CategoriesShown
	s.ProductsFallback = v.ProductsFallback
	s.CategoriesFallback = v.CategoriesFallback
	s.ViewedAt = v.ViewedAt
	return
}
