package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the course service
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	CourseMutations     *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with every collector registered on a
// private registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courses_http_requests_total",
			Help: "Total number of HTTP requests processed by route and status",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "courses_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	courseMutations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courses_mutations_total",
			Help: "Successful course mutations by operation",
		},
		[]string{"operation"},
	)

	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		courseMutations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry:            registry,
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		CourseMutations:     courseMutations,
	}
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordMutation counts a successful create, update, patch or delete.
// Safe to call on a nil receiver.
func (m *Metrics) RecordMutation(operation string) {
	if m == nil {
		return
	}
	m.CourseMutations.WithLabelValues(operation).Inc()
}
