package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/niksmo/saree-landing/internal/core/domain"
	"github.com/niksmo/saree-landing/internal/core/port"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const DefaultPrefix = "landing"

const (
	outcomeOK       = "ok"
	outcomeFallback = "fallback"
)

var _ port.FetchRecorder = (*Metrics)(nil)

type Metrics struct {
	reg             *prometheus.Registry
	backendFetches  *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	httpReqDuration *prometheus.HistogramVec
}

// New registers the landing metrics on a dedicated registry.
func New(prefix string) *Metrics {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		backendFetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_backend_fetches_total",
				Help: "Backend collection fetches by section and outcome",
			},
			[]string{"section", "outcome"},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpReqDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
	}
}

func (m *Metrics) RecordFetch(section domain.Section, fallback bool) {
	outcome := outcomeOK
	if fallback {
		outcome = outcomeFallback
	}
	m.backendFetches.WithLabelValues(string(section), outcome).Inc()
}

func (m *Metrics) ObserveRequest(
	method, path string, status int, d time.Duration,
) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpReqDuration.WithLabelValues(method, path, code).Observe(d.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
