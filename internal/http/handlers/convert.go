package handlers

import (
	"franchise-dispatch/internal/domain"
)

func toOrderDTO(o domain.Order, selected, updating bool) orderDTO {
	dto := orderDTO{
		ID:             o.ID,
		Code:           o.Code,
		Status:         string(o.Status),
		CustomerName:   o.CustomerName,
		Phone:          o.Phone,
		AlternatePhone: o.AlternatePhone,
		Address:        o.Address,
		City:           o.City,
		TotalAmount:    o.TotalAmount.StringFixed(2),
		DeliveryCharge: o.DeliveryCharge.StringFixed(2),
		PrepaidAmount:  o.PrepaidAmount.StringFixed(2),
		DeliveryType:   string(o.DeliveryType),
		CreatedAt:      o.CreatedAt,
		Assignable:     o.Status.AssignmentEligible(),
		Selected:       selected,
		Updating:       updating,
	}
	if o.RiderID != "" {
		rider := o.RiderID
		dto.RiderID = &rider
	}
	for _, it := range o.Items {
		dto.Items = append(dto.Items, lineItemDTO{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	dto.AllowedNext = make([]string, 0, len(o.Status.AllowedNext()))
	for _, s := range o.Status.AllowedNext() {
		dto.AllowedNext = append(dto.AllowedNext, string(s))
	}
	return dto
}

func toRiderDTO(r domain.Rider) riderDTO {
	return riderDTO{
		ID:    r.ID,
		Name:  r.Name,
		Phone: r.Phone,
		Email: r.Email,
	}
}

func toAuditDTO(rec domain.AuditRecord) auditDTO {
	return auditDTO{
		ID:         rec.ID.String(),
		OrderID:    rec.OrderID,
		RiderID:    rec.RiderID,
		Action:     string(rec.Action),
		Status:     string(rec.Status),
		Actor:      rec.Actor,
		Comment:    rec.Comment,
		OccurredAt: rec.OccurredAt,
	}
}

func toAssignResultDTO(res domain.AssignResult) assignResultDTO {
	dto := assignResultDTO{
		RiderID:    res.RiderID,
		Assigned:   res.Assigned,
		Reassigned: res.Reassigned,
	}
	if dto.Assigned == nil {
		dto.Assigned = []string{}
	}
	if dto.Reassigned == nil {
		dto.Reassigned = []string{}
	}
	return dto
}
