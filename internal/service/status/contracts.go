//go:generate mockgen -source=contracts.go -destination=status_mocks_test.go -package=status_test

package status

import (
	"context"

	"franchise-dispatch/internal/domain"
)

// OrderGateway abstracts the order store operations the engine submits.
type OrderGateway interface {
	Patch(ctx context.Context, u domain.PartialOrderUpdate) (*domain.Order, error)
	BulkUpdateStatus(ctx context.Context, orderIDs []string, status domain.OrderStatus) error
}

// Auditor records accepted mutations. Audit failures must not fail the
// user-facing operation.
type Auditor interface {
	Record(ctx context.Context, recs []domain.AuditRecord) error
}
