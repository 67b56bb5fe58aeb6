package kafka

import (
	"strings"
	"time"

	"franchise-dispatch/internal/service/orders"
)

// EventDTO is a data transfer object for orders.Event
type EventDTO struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	RiderID   string    `json:"rider_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	return orders.Event{
		OrderID:   strings.TrimSpace(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		RiderID:   strings.TrimSpace(dto.RiderID),
		CreatedAt: dto.CreatedAt,
	}
}
