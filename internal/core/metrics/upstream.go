package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "helphub",
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Admin API call latency in seconds",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"protocol", "operation", "outcome"},
	)

	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helphub",
			Subsystem: "upstream",
			Name:      "requests_total",
			Help:      "Total number of Admin API calls",
		},
		[]string{"protocol", "operation", "outcome"},
	)
)

// Upstream call outcomes. Kept to a fixed set so label cardinality stays
// bounded; the actual status codes live in the logs.
const (
	OutcomeOK             = "ok"
	OutcomeTransportError = "transport_error"
	OutcomeHTTPError      = "http_error"
	OutcomeAPIError       = "api_error"
	OutcomeDecodeError    = "decode_error"
)

// ObserveUpstream records one Admin API call.
func ObserveUpstream(protocol, operation, outcome string, elapsed time.Duration) {
	UpstreamRequestDuration.WithLabelValues(protocol, operation, outcome).Observe(elapsed.Seconds())
	UpstreamRequestsTotal.WithLabelValues(protocol, operation, outcome).Inc()
}

func init() {
	Registry.MustRegister(UpstreamRequestDuration, UpstreamRequestsTotal)
}
