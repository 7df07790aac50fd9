package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for upstream calls and degrade events.
type Metrics struct {
	UpstreamRequests  *prometheus.CounterVec   // labels: provider={usgs,openmeteo}, outcome={success,error}
	UpstreamDuration  *prometheus.HistogramVec // labels: provider
	DegradedResponses *prometheus.CounterVec   // labels: endpoint={river,aqi,weather}
}

// NewMetrics creates and registers all collectors with the default registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.DegradedResponses,
	)
	return m
}

// NewMetricsForTesting creates unregistered collectors for use in tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rvr",
			Name:      "upstream_requests_total",
			Help:      "Upstream API requests by provider and outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rvr",
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream API request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		DegradedResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rvr",
			Name:      "degraded_responses_total",
			Help:      "Responses served with empty data after an upstream failure.",
		}, []string{"endpoint"}),
	}
}
