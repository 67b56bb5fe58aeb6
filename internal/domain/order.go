package domain

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// DeliveryType represents how an order is delivered.
type DeliveryType string

// List of possible delivery types
const (
	DeliveryInsideValley  DeliveryType = "inside_valley"
	DeliveryOutsideValley DeliveryType = "outside_valley"
)

// LineItem is a single product position of an order.
type LineItem struct {
	ProductID string
	Quantity  int
}

// Order represents an order as reported by the remote order store. Orders are
// created by the external sales subsystem and only mutated here through
// status updates and rider assignment.
type Order struct {
	ID             string
	Code           string
	Status         OrderStatus
	RiderID        string // empty when unassigned
	CustomerName   string
	Phone          string
	AlternatePhone string
	Address        string
	City           string
	TotalAmount    decimal.Decimal
	DeliveryCharge decimal.Decimal
	PrepaidAmount  decimal.Decimal
	DeliveryType   DeliveryType
	CreatedAt      time.Time
	Items          []LineItem
}

// Assigned reports whether a rider currently holds the order.
func (o Order) Assigned() bool { return o.RiderID != "" }

// PartialOrderUpdate carries optional fields for PATCH /orders/{id}.
// A nil field means “do not change” that attribute.
type PartialOrderUpdate struct {
	ID             string
	Status         *OrderStatus
	Comment        *string
	CustomerName   *string
	Phone          *string
	AlternatePhone *string
	Address        *string
	City           *string
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+?[0-9]{10,13}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
