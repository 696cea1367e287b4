package httphandler

import (
	"log/slog"
	"net/http"
	"time"
)

type RequestObserver interface {
	ObserveRequest(method, path string, status int, d time.Duration)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Instrument logs and measures every request by its matched route.
func Instrument(obs RequestObserver, next http.Handler) http.Handler {
	hf := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		elapsed := time.Since(start)
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		obs.ObserveRequest(r.Method, path, rec.status, elapsed)

		slog.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"elapsed", elapsed,
		)
	}
	return http.HandlerFunc(hf)
}
