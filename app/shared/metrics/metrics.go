package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	importRuns     *prometheus.CounterVec
	importDuration prometheus.Histogram
	playerMatches  *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: registry,
		importRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tournament_hub_import_runs_total",
			Help: "Import runs by outcome.",
		}, []string{"outcome"}),
		importDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tournament_hub_import_duration_seconds",
			Help:    "End-to-end import run duration.",
			Buckets: prometheus.DefBuckets,
		}),
		playerMatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tournament_hub_player_matches_total",
			Help: "Distinct imported players by match classification.",
		}, []string{"classification"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tournament_hub_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tournament_hub_http_request_duration_seconds",
			Help:    "HTTP request duration by method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
	}

	registry.MustRegister(
		m.importRuns,
		m.importDuration,
		m.playerMatches,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Handler serves the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordImportRun records one import run with its outcome and duration.
func (m *Metrics) RecordImportRun(outcome string, duration time.Duration) {
	m.importRuns.WithLabelValues(outcome).Inc()
	m.importDuration.Observe(duration.Seconds())
}

// RecordPlayerMatch records the classification of one distinct imported player.
func (m *Metrics) RecordPlayerMatch(classification string) {
	m.playerMatches.WithLabelValues(classification).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Middleware instruments HTTP requests.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.httpRequests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		m.httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
