//go:generate mockgen -source=contracts.go -destination=selection_mocks_test.go -package=selection_test

package selection

import (
	"context"

	"franchise-dispatch/internal/domain"
)

// Verifier performs the bulk verify transition for a set of orders.
type Verifier interface {
	BulkVerify(ctx context.Context, orderIDs []string) error
}

// Assigner dispatches a batch rider assignment.
type Assigner interface {
	Assign(ctx context.Context, orderIDs []string, riderID string) (domain.AssignResult, error)
}
