package domain

// OrderStatus represents the lifecycle status of an order. The values are the
// exact strings used on the wire by the remote order store.
type OrderStatus string

// List of possible order statuses
const (
	StatusSentToYDM          OrderStatus = "Sent to YDM"
	StatusVerified           OrderStatus = "Verified"
	StatusOutForDelivery     OrderStatus = "Out For Delivery"
	StatusRescheduled        OrderStatus = "Rescheduled"
	StatusDelivered          OrderStatus = "Delivered"
	StatusCancelled          OrderStatus = "Cancelled"
	StatusReturnPending      OrderStatus = "Return Pending"
	StatusReturnedByCustomer OrderStatus = "Returned By Customer"
	StatusReturnedByYDM      OrderStatus = "Returned By YDM"
)

// Actor identifies who is requesting a transition.
type Actor string

// List of actors that drive status transitions
const (
	ActorFranchise Actor = "franchise"
	ActorRider     Actor = "rider"
)

// Gate is the side effect a transition demands before it may be submitted.
type Gate int

// List of transition gates
const (
	// GateNone - submit the update immediately.
	GateNone Gate = iota
	// GateConfirm - the transition is terminal and needs explicit confirmation.
	GateConfirm
	// GateComment - the transition needs a non-empty free-text comment.
	GateComment
	// GateVerify - the transition goes through the dedicated verify endpoint.
	GateVerify
)

// List of allowed statuses
var allowedStatuses = [...]OrderStatus{
	StatusSentToYDM, StatusVerified, StatusOutForDelivery, StatusRescheduled,
	StatusDelivered, StatusCancelled, StatusReturnPending,
	StatusReturnedByCustomer, StatusReturnedByYDM,
}

// transitions is the single authoritative table: current status -> statuses
// reachable from it. Return Pending has no entry: it is terminal for this
// subsystem.
var transitions = map[OrderStatus][]OrderStatus{
	StatusSentToYDM: {StatusVerified, StatusReturnPending},
	StatusVerified: {
		StatusOutForDelivery, StatusRescheduled, StatusCancelled,
		StatusReturnPending,
	},
	StatusOutForDelivery: {
		StatusDelivered, StatusRescheduled, StatusCancelled,
		StatusReturnPending, StatusReturnedByCustomer,
	},
	StatusRescheduled: {
		StatusOutForDelivery, StatusCancelled, StatusReturnPending,
	},
	StatusDelivered:          {StatusReturnedByCustomer},
	StatusCancelled:          {StatusReturnPending, StatusReturnedByYDM},
	StatusReturnedByCustomer: {StatusReturnedByYDM},
	StatusReturnedByYDM:      {},
}

// Valid checks if the OrderStatus is one of the closed enumeration.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether no further status or assignment mutation is
// permitted once an order holds this status.
func (s OrderStatus) Terminal() bool {
	return s == StatusReturnPending
}

// CanTransition reports whether to is reachable from s.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, v := range transitions[s] {
		if v == to {
			return true
		}
	}
	return false
}

// AllowedNext returns the statuses reachable from s.
func (s OrderStatus) AllowedNext() []OrderStatus {
	next := transitions[s]
	out := make([]OrderStatus, len(next))
	copy(out, next)
	return out
}

// TransitionGate returns the gate the actor must pass before submitting the
// transition into to. Verify is a distinct operation: the only way out of
// Sent to YDM into normal fulfillment.
func TransitionGate(from, to OrderStatus, actor Actor) Gate {
	if from == StatusSentToYDM && to == StatusVerified {
		return GateVerify
	}
	if actor == ActorRider && (to == StatusRescheduled || to == StatusReturnPending) {
		return GateComment
	}
	if to == StatusReturnPending {
		return GateConfirm
	}
	return GateNone
}

// AssignmentEligible reports whether an order in this status may be assigned
// or reassigned to a rider.
func (s OrderStatus) AssignmentEligible() bool {
	return s != StatusSentToYDM && !s.Terminal()
}
