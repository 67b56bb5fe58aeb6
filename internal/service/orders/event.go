package orders

import (
	"time"
)

// Event is a single order event published by the external sales subsystem.
type Event struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	RiderID   string    `json:"rider_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
