package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var encodeFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: "ocs_client",
		Name:      "query_encode_failures_total",
		Help:      "Query parameter values written unescaped because encoding failed.",
	},
)
