//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"franchise-dispatch/internal/domain"
)

// AssignmentCache keeps the local order to rider hints in sync with events.
type AssignmentCache interface {
	Set(orderID, riderID string)
	Delete(orderID string)
}

// Broadcaster pushes order updates to the live dashboard feed. Delivery is
// fire-and-forget.
type Broadcaster interface {
	Broadcast(e Event)
}

// Auditor persists the audit trail for processed events.
type Auditor interface {
	Record(ctx context.Context, recs []domain.AuditRecord) error
}
