package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction names the mutation recorded in the audit trail. The backend
// treats first assignment and reassignment as different operations, so the
// trail keeps them apart too.
type AuditAction string

// List of audit actions
const (
	AuditAssign       AuditAction = "assign"
	AuditReassign     AuditAction = "reassign"
	AuditVerify       AuditAction = "verify"
	AuditStatusChange AuditAction = "status_change"
)

// AuditRecord is one row of the assignment/status audit trail.
type AuditRecord struct {
	ID         uuid.UUID
	OrderID    string
	RiderID    string // empty for pure status changes
	Action     AuditAction
	Status     OrderStatus // target status for verify/status_change
	Actor      string
	Comment    string
	OccurredAt time.Time
}
