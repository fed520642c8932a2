package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "postcodesio_client",
			Name:      "requests_total",
			Help:      "API requests issued, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "postcodesio_client",
			Name:      "request_duration_seconds",
			Help:      "Wall-clock duration of one API round trip.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observe(op, outcome string, d time.Duration) {
	requestsTotal.WithLabelValues(op, outcome).Inc()
	requestDuration.WithLabelValues(op).Observe(d.Seconds())
}
