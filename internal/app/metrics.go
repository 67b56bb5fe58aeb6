package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"franchise-dispatch/internal/metrics"
)

// metricsOut provides the service counters under dig names. Registration is
// idempotent so rebuilt containers in tests reuse the existing collectors.
type metricsOut struct {
	dig.Out

	RateLimitExceededTotal    prometheus.Counter `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal       prometheus.Counter `name:"gateway_retries_total"`
	StatusUpdateFailuresTotal prometheus.Counter `name:"status_update_failures_total"`
	AssignmentsTotal          *prometheus.CounterVec
}

func provideMetrics() (metricsOut, error) {
	rl, err := registerCounter(metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total")
	if err != nil {
		return metricsOut{}, err
	}
	gr, err := registerCounter(metrics.NewGatewayRetriesTotal(), "gateway_retries_total")
	if err != nil {
		return metricsOut{}, err
	}
	sf, err := registerCounter(metrics.NewStatusUpdateFailuresTotal(), "status_update_failures_total")
	if err != nil {
		return metricsOut{}, err
	}
	av, err := registerCounterVec(metrics.NewAssignmentsTotal(), "rider_assignments_total")
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal:    rl,
		GatewayRetriesTotal:       gr,
		StatusUpdateFailuresTotal: sf,
		AssignmentsTotal:          av,
	}, nil
}

func registerCounter(c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(prometheus.Counter), nil
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func registerCounterVec(c *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
