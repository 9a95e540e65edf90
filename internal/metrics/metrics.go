package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Keikoban
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Identity provider metrics
	IdPRequestsTotal  prometheus.CounterVec
	IdPRequestFailure prometheus.CounterVec

	// Business Metrics
	ActivitiesLoggedTotal prometheus.Counter
	MembersActive         prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keikoban_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "keikoban_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "keikoban_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keikoban_cache_hits_total",
				Help: "Cache hits by cache key prefix",
			},
			[]string{"prefix"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keikoban_cache_misses_total",
				Help: "Cache misses by cache key prefix",
			},
			[]string{"prefix"},
		),

		// Identity provider metrics
		IdPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keikoban_idp_requests_total",
				Help: "Requests issued to the identity provider by operation",
			},
			[]string{"operation"},
		),
		IdPRequestFailure: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "keikoban_idp_request_failures_total",
				Help: "Identity provider failures by error code",
			},
			[]string{"code"},
		),

		// Business Metrics
		ActivitiesLoggedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "keikoban_activities_logged_total",
				Help: "Practice sessions logged since process start",
			},
		),
		MembersActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "keikoban_members_active",
				Help: "Active members known to the portal",
			},
		),
	}
}
