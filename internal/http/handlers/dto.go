package handlers

import "time"

// orderDTO is one order row as the dashboard sees it.
type orderDTO struct {
	ID             string        `json:"id"`
	Code           string        `json:"order_code"`
	Status         string        `json:"order_status"`
	RiderID        *string       `json:"rider_id,omitempty"`
	CustomerName   string        `json:"customer_name"`
	Phone          string        `json:"phone_number"`
	AlternatePhone string        `json:"alternate_phone_number,omitempty"`
	Address        string        `json:"address"`
	City           string        `json:"city"`
	TotalAmount    string        `json:"total_price"`
	DeliveryCharge string        `json:"delivery_charge"`
	PrepaidAmount  string        `json:"prepaid_amount"`
	DeliveryType   string        `json:"delivery_type"`
	CreatedAt      time.Time     `json:"created_at"`
	Items          []lineItemDTO `json:"order_items,omitempty"`
	AllowedNext    []string      `json:"allowed_next"`
	Assignable     bool          `json:"assignable"`
	Selected       bool          `json:"selected"`
	Updating       bool          `json:"updating"`
}

type lineItemDTO struct {
	ProductID string `json:"product"`
	Quantity  int    `json:"quantity"`
}

type orderPageDTO struct {
	Results []orderDTO `json:"results"`
	Count   int        `json:"count"`
}

type riderDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone_number"`
	Email string `json:"email"`
}

type auditDTO struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"order_id"`
	RiderID    string    `json:"rider_id,omitempty"`
	Action     string    `json:"action"`
	Status     string    `json:"status,omitempty"`
	Actor      string    `json:"actor"`
	Comment    string    `json:"comment,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type assignResultDTO struct {
	RiderID    string   `json:"rider_id"`
	Assigned   []string `json:"assigned"`
	Reassigned []string `json:"reassigned"`
}

// statusUpdateRequest is the body of PATCH /orders/{id}/status.
type statusUpdateRequest struct {
	Status    string `json:"status"`
	Comment   string `json:"comment"`
	Confirmed bool   `json:"confirmed"`
}

// assignRequest is the body of POST /orders/assign. The orders come from the
// caller's selection, only the rider is named here.
type assignRequest struct {
	RiderID string `json:"rider_id"`
}

type toggleRequest struct {
	OrderID string `json:"order_id"`
}

type toggleAllRequest struct {
	OrderIDs []string `json:"order_ids"`
}

// filtersRequest is the body of PUT /filters. Nil fields stay unchanged.
type filtersRequest struct {
	Search       *string `json:"search"`
	Status       *string `json:"status"`
	DeliveryType *string `json:"delivery_type"`
	IsAssigned   *string `json:"is_assigned"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	Page         *int    `json:"page"`
}
