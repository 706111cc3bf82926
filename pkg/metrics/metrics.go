package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreFailures counts store operations that failed, by operation.
	StoreFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mflix",
		Name:      "store_failures_total",
		Help:      "Failed document store operations.",
	}, []string{"operation"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "mflix",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
