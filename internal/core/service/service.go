package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/niksmo/saree-landing/internal/core/port"
)

var _ port.LandingLoader = (*Service)(nil)

type Service struct {
	catalog  port.CatalogSource
	views    port.LandingViewProducer
	recorder port.FetchRecorder
	now      func() time.Time
}

// New returns the landing service. views and recorder may be nil.
func New(
	catalog port.CatalogSource,
	views port.LandingViewProducer,
	recorder port.FetchRecorder,
) Service {
	return Service{
		catalog:  catalog,
		views:    views,
		recorder: recorder,
		now:      time.Now,
	}
}

// LoadLanding performs one page load and returns the settled sections.
func (s Service) LoadLanding(ctx context.Context) domain.Landing {
	const op = "Service.LoadLanding"
	log := slog.With("op", op)

	page := NewPage(s.catalog, OnSettleOpt(s.onSettle))
	page.Start(ctx)
	if err := page.Wait(ctx); err != nil {
		log.Warn("page load interrupted", "err", err)
	}

	landing := page.Snapshot()
	s.publishView(ctx, landing)
	return landing
}

func (s Service) onSettle(section domain.Section, fallback bool) {
	if s.recorder == nil {
		return
	}
	s.recorder.RecordFetch(section, fallback)
}

func (s Service) publishView(ctx context.Context, l domain.Landing) {
	const op = "Service.publishView"

	if s.views == nil {
		return
	}
	err := s.views.ProduceView(ctx, l.View(s.now()))
	if err != nil {
		slog.Error("failed to publish landing view", "op", op, "err", err)
	}
}
