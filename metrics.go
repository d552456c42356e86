package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/opencommercesearch/opencommercesearch/client/internal/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ocs_client",
			Name:      "requests_total",
			Help:      "API calls by operation and outcome (ok, HTTP status, or error).",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ocs_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of API calls.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

func observe(operation string, start time.Time, err error) {
	requestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues(operation, outcomeOf(err)).Inc()
}

func outcomeOf(err error) string {
	if err == nil {
		return "ok"
	}
	if status := errors.StatusCode(err); status > 0 {
		return strconv.Itoa(status)
	}
	return "error"
}
