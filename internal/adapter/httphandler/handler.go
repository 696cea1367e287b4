package httphandler

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/niksmo/saree-landing/internal/adapter/view"
	"github.com/niksmo/saree-landing/internal/core/port"
)

// GET / (200 OK text/html, the page renders with defaults when the backend is down)
// GET /healthz (200 OK)
// GET /metrics (200 OK, prometheus exposition)

type PageRenderer interface {
	Render(io.Writer, view.Page) error
}

type LandingHandler struct {
	loader   port.LandingLoader
	renderer PageRenderer
	now      func() time.Time
}

func RegisterLanding(
	mux *http.ServeMux, loader port.LandingLoader, renderer PageRenderer,
) {
	h := LandingHandler{loader, renderer, time.Now}
	mux.HandleFunc("GET /{$}", h.GetLanding)
}

func (h LandingHandler) GetLanding(w http.ResponseWriter, r *http.Request) {
	const op = "LandingHandler.GetLanding"
	log := slog.With("op", op)

	landing := h.loader.LoadLanding(r.Context())
	page := view.NewPage(landing, h.now().Year())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, page); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		log.Error("failed to render landing", "err", err)
		return
	}

	log.Debug("rendered",
		"nProducts", len(landing.Products),
		"nCategories", len(landing.Categories),
		"productsFallback", landing.ProductsFallback,
		"categoriesFallback", landing.CategoriesFallback,
	)
}

func RegisterHealth(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
}

func RegisterMetrics(mux *http.ServeMux, h http.Handler) {
	mux.Handle("GET /metrics", h)
}
