//go:generate mockgen -source=contracts.go -destination=handlers_mocks_test.go -package=handlers_test

package handlers

import (
	"context"

	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/service/orders"
	"franchise-dispatch/internal/service/status"
)

// OrderReader is the slice of the order store gateway the handlers need.
type OrderReader interface {
	List(ctx context.Context, q domain.OrderQuery) (domain.OrderPage, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// StatusEngine guards and submits status transitions.
type StatusEngine interface {
	Update(ctx context.Context, req status.UpdateRequest) error
	Updating(orderID string) bool
}

// RiderDirectory lists the riders available for assignment.
type RiderDirectory interface {
	List(ctx context.Context, search string) ([]domain.Rider, error)
}

// AuditTrail reads the persisted audit trail.
type AuditTrail interface {
	ListByOrder(ctx context.Context, orderID string) ([]domain.AuditRecord, error)
}

// Feed pushes order updates to the live dashboard feed.
type Feed interface {
	Broadcast(e orders.Event)
}
