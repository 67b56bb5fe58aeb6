package orders

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/logx"
)

type gateway interface {
	List(context.Context, domain.OrderQuery) (domain.OrderPage, error)
	Get(context.Context, string) (*domain.Order, error)
	Patch(context.Context, domain.PartialOrderUpdate) (*domain.Order, error)
	BulkUpdateStatus(context.Context, []string, domain.OrderStatus) error
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries transient order store failures with bounded backoff.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway checks that next is not nil and returns a RetryingGateway.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// List fetches one page of orders, retrying transient failures.
func (g *RetryingGateway) List(ctx context.Context, q domain.OrderQuery) (domain.OrderPage, error) {
	var page domain.OrderPage
	err := g.retry(ctx, "List", func() error {
		var err error
		page, err = g.next.List(ctx, q)
		return err
	})
	return page, err
}

// Get fetches a single order, retrying transient failures.
func (g *RetryingGateway) Get(ctx context.Context, id string) (*domain.Order, error) {
	var ord *domain.Order
	err := g.retry(ctx, "Get", func() error {
		var err error
		ord, err = g.next.Get(ctx, id)
		return err
	})
	return ord, err
}

// Patch applies a partial order update, retrying transient failures.
func (g *RetryingGateway) Patch(ctx context.Context, u domain.PartialOrderUpdate) (*domain.Order, error) {
	var ord *domain.Order
	err := g.retry(ctx, "Patch", func() error {
		var err error
		ord, err = g.next.Patch(ctx, u)
		return err
	})
	return ord, err
}

// BulkUpdateStatus moves a batch of orders into status, retrying transient failures.
func (g *RetryingGateway) BulkUpdateStatus(ctx context.Context, ids []string, status domain.OrderStatus) error {
	return g.retry(ctx, "BulkUpdateStatus", func() error {
		return g.next.BulkUpdateStatus(ctx, ids, status)
	})
}

func (g *RetryingGateway) retry(ctx context.Context, method string, call func() error) error {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		err := call()
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("order gateway retry",
			logx.String("method", method),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable reports whether the error is transient: network failure,
// throttling, or a 5xx from the order store.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// backoff computes the retry delay.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
