//go:generate mockgen -source=contracts.go -destination=assign_mocks_test.go -package=assign_test

package assign

import (
	"context"
	"time"

	"franchise-dispatch/internal/domain"
)

// OrderSource supplies fresh order state from the order store. The server
// copy, not the local cache, decides assign vs reassign.
type OrderSource interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// RiderGateway abstracts the rider directory assignment operations.
type RiderGateway interface {
	Assign(ctx context.Context, orderIDs []string, riderID string) error
	Reassign(ctx context.Context, orderIDs []string, riderID string) error
}

// Auditor records dispatched assignments. Audit failures must not fail the
// user-facing operation.
type Auditor interface {
	Record(ctx context.Context, recs []domain.AuditRecord) error
}

// Clock abstracts time for the transient success flash.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
