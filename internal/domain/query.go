package domain

import "time"

// AssignmentFilter narrows an order listing by assignment state.
type AssignmentFilter string

// List of assignment filters
const (
	AssignmentAny        AssignmentFilter = ""
	AssignmentAssigned   AssignmentFilter = "true"
	AssignmentUnassigned AssignmentFilter = "false"
)

// OrderQuery is the query produced by the filter controller and consumed by
// the orders gateway, which converts it into request parameters.
type OrderQuery struct {
	Franchise    string
	Page         int
	PageSize     int
	Search       string
	Status       OrderStatus // zero value means "any"
	DeliveryType DeliveryType
	IsAssigned   AssignmentFilter
	StartDate    time.Time // zero value means open-ended
	EndDate      time.Time
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Results []Order
	Count   int
}
