package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by upstream gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by upstream gateways",
	})
}

// NewAssignmentsTotal returns a Prometheus counter vector for rider assignments by kind (assign/reassign)
func NewAssignmentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rider_assignments_total",
		Help: "Total number of rider assignment requests dispatched, by kind",
	}, []string{"kind"})
}

// NewStatusUpdateFailuresTotal returns a Prometheus counter for failed order status updates
func NewStatusUpdateFailuresTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "status_update_failures_total",
		Help: "Total number of order status updates rejected or failed upstream",
	})
}
