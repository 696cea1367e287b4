package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/saree-landing/config"
	"github.com/niksmo/saree-landing/internal/adapter"
	"github.com/niksmo/saree-landing/internal/adapter/backend"
	"github.com/niksmo/saree-landing/internal/adapter/httphandler"
	"github.com/niksmo/saree-landing/internal/adapter/kafka"
	"github.com/niksmo/saree-landing/internal/adapter/metrics"
	"github.com/niksmo/saree-landing/internal/adapter/view"
	"github.com/niksmo/saree-landing/internal/core/port"
	"github.com/niksmo/saree-landing/internal/core/service"
	"github.com/niksmo/saree-landing/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type App struct {
	ctx           context.Context
	cfg           config.Config
	metrics       *metrics.Metrics
	renderer      view.Renderer
	catalog       backend.Client
	viewsProducer *kafka.ViewsProducer
	service       service.Service
	httpServer    httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initMetrics()
	app.initRenderer()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initMetrics() {
	app.metrics = metrics.New(app.cfg.Metrics.Prefix)
}

func (app *App) initRenderer() {
	const op = "App.initRenderer"

	renderer, err := view.NewRenderer()
	if err != nil {
		app.fallDown(op, err)
	}
	app.renderer = renderer
}

func (app *App) initOutboundAdapters() {
	app.catalog = backend.NewClient(backend.ClientOpts{
		BaseURL: app.cfg.BackendURL,
		Timeout: app.cfg.BackendTimeout,
	})
	app.initViewsProducer()
}

// initViewsProducer leaves views disabled when the broker is not
// configured or unreachable.
func (app *App) initViewsProducer() {
	const op = "App.initViewsProducer"
	log := slog.With("op", op)

	if !app.cfg.ViewsEnabled() {
		log.Info("landing views publishing is disabled")
		return
	}

	p, err := app.createViewsProducer()
	if err != nil {
		log.Error("landing views publishing is disabled", "err", err)
		return
	}
	app.viewsProducer = &p
}

func (app *App) createViewsProducer() (kafka.ViewsProducer, error) {
	brokerCfg := app.cfg.Broker
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(brokerCfg.SchemaRegistryURLs...))
	if err != nil {
		return kafka.ViewsProducer{}, err
	}

	viewSerde, err := schema.NewSerdeLandingViewV1(
		ctx,
		schema.SubjectOpt(brokerCfg.Topics.LandingViews+"-value"),
		schema.SchemaIdentifierOpt(schema.NewSchemaCreater(srClient)),
	)
	if err != nil {
		return kafka.ViewsProducer{}, err
	}

	var tlsFiles = brokerCfg.TLS
	clientOpt := kafka.ProducerClientOpt(
		ctx, brokerCfg.SeedBrokers, brokerCfg.Topics.LandingViews, nil,
	)
	if tlsFiles.CA != "" {
		tlsConfig, err := adapter.MakeTLSConfig(tlsFiles.CA, tlsFiles.Cert, tlsFiles.Key)
		if err != nil {
			return kafka.ViewsProducer{}, err
		}
		clientOpt = kafka.ProducerClientOpt(
			ctx, brokerCfg.SeedBrokers, brokerCfg.Topics.LandingViews, tlsConfig,
		)
	}

	return kafka.NewViewsProducer(clientOpt, kafka.ProducerEncoderOpt(viewSerde))
}

func (app *App) initCoreService() {
	var views port.LandingViewProducer
	if app.viewsProducer != nil {
		views = app.viewsProducer
	}
	app.service = service.New(app.catalog, views, app.metrics)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterLanding(mux, app.service, app.renderer)
	httphandler.RegisterHealth(mux)
	httphandler.RegisterMetrics(mux, app.metrics.Handler())

	handler := httphandler.Instrument(app.metrics, mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "backend", app.cfg.BackendURL)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if app.viewsProducer != nil {
		app.viewsProducer.Close()
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
