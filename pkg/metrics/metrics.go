package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics groups the console's collectors. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
	StoreFailures    *prometheus.CounterVec
	WorkOrderEvents  *prometheus.CounterVec
	SummaryCacheHits *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facility",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "facility",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		StoreFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facility",
			Name:      "store_failures_total",
			Help:      "Failed loads and saves of a collection.",
		}, []string{"collection", "op"}),
		WorkOrderEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facility",
			Name:      "work_order_events_total",
			Help:      "Work order lifecycle events.",
		}, []string{"event"}),
		SummaryCacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "facility",
			Name:      "maintenance_summary_cache_total",
			Help:      "Maintenance summary cache lookups by result.",
		}, []string{"result"}),
	}

	m.Registry.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.StoreFailures,
		m.WorkOrderEvents,
		m.SummaryCacheHits,
		collectors.NewGoCollector(),
	)
	return m
}
