package domain

// Rider represents a delivery agent from the rider directory. Read-only from
// this subsystem's perspective.
type Rider struct {
	ID    string
	Name  string
	Phone string
	Email string
}

// AssignResult - struct representing the outcome of a bulk assignment.
type AssignResult struct {
	RiderID    string
	Assigned   []string // order ids that went through the assign endpoint
	Reassigned []string // order ids that went through the reassign endpoint
}
