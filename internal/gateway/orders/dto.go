package orders

import (
	"time"

	"github.com/shopspring/decimal"

	"franchise-dispatch/internal/domain"
)

// orderDTO mirrors the order store wire format. Monetary fields arrive as
// decimal strings.
type orderDTO struct {
	ID             string          `json:"id"`
	Code           string          `json:"order_code"`
	Status         string          `json:"order_status"`
	Rider          *string         `json:"ydm_rider"`
	CustomerName   string          `json:"customer_name"`
	Phone          string          `json:"phone_number"`
	AlternatePhone string          `json:"alternate_phone_number"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	TotalAmount    decimal.Decimal `json:"total_price"`
	DeliveryCharge decimal.Decimal `json:"delivery_charge"`
	PrepaidAmount  decimal.Decimal `json:"prepaid_amount"`
	DeliveryType   string          `json:"delivery_type"`
	CreatedAt      time.Time       `json:"created_at"`
	Items          []lineItemDTO   `json:"order_items"`
}

type lineItemDTO struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type pageDTO struct {
	Results []orderDTO `json:"results"`
	Count   int        `json:"count"`
}

type patchDTO struct {
	Status         *string `json:"order_status,omitempty"`
	Comment        *string `json:"comment,omitempty"`
	CustomerName   *string `json:"customer_name,omitempty"`
	Phone          *string `json:"phone_number,omitempty"`
	AlternatePhone *string `json:"alternate_phone_number,omitempty"`
	Address        *string `json:"address,omitempty"`
	City           *string `json:"city,omitempty"`
}

type bulkStatusDTO struct {
	OrderIDs []string `json:"order_ids"`
	Status   string   `json:"status"`
}

func toDomain(d orderDTO) domain.Order {
	o := domain.Order{
		ID:             d.ID,
		Code:           d.Code,
		Status:         domain.OrderStatus(d.Status),
		CustomerName:   d.CustomerName,
		Phone:          d.Phone,
		AlternatePhone: d.AlternatePhone,
		Address:        d.Address,
		City:           d.City,
		TotalAmount:    d.TotalAmount,
		DeliveryCharge: d.DeliveryCharge,
		PrepaidAmount:  d.PrepaidAmount,
		DeliveryType:   domain.DeliveryType(d.DeliveryType),
		CreatedAt:      d.CreatedAt,
	}
	if d.Rider != nil {
		o.RiderID = *d.Rider
	}
	for _, it := range d.Items {
		o.Items = append(o.Items, domain.LineItem{ProductID: it.Product, Quantity: it.Quantity})
	}
	return o
}

func toPatchDTO(u domain.PartialOrderUpdate) patchDTO {
	p := patchDTO{
		Comment:        u.Comment,
		CustomerName:   u.CustomerName,
		Phone:          u.Phone,
		AlternatePhone: u.AlternatePhone,
		Address:        u.Address,
		City:           u.City,
	}
	if u.Status != nil {
		s := string(*u.Status)
		p.Status = &s
	}
	return p
}
