package status

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"franchise-dispatch/internal/apperr"
	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/logx"
)

type counter interface {
	Inc()
}

// Engine guards order status transitions against the transition table and
// submits accepted ones to the order store. The verify gate out of
// Sent to YDM goes through the dedicated bulk endpoint; everything else is a
// partial PATCH.
type Engine struct {
	gw       OrderGateway
	audit    Auditor
	logger   logx.Logger
	failures counter
	now      func() time.Time

	mu      sync.Mutex
	pending map[string]struct{} // order ids with an in-flight update
}

// NewEngine creates a status Engine.
func NewEngine(gw OrderGateway, audit Auditor, logger logx.Logger, failures counter) *Engine {
	return &Engine{
		gw:       gw,
		audit:    audit,
		logger:   logger,
		failures: failures,
		now:      func() time.Time { return time.Now().UTC() },
		pending:  make(map[string]struct{}),
	}
}

// UpdateRequest describes a single requested transition.
type UpdateRequest struct {
	OrderID   string
	From      domain.OrderStatus
	To        domain.OrderStatus
	Actor     domain.Actor
	Comment   string
	Confirmed bool // the caller passed the confirmation prompt
}

// Decide validates the transition and returns the gate it must pass. No
// network call is made: an illegal transition is rejected right here.
func (e *Engine) Decide(from, to domain.OrderStatus, actor domain.Actor) (domain.Gate, error) {
	if !from.Valid() || !to.Valid() {
		return domain.GateNone, apperr.Invalid
	}
	if from.Terminal() {
		return domain.GateNone, apperr.Conflict
	}
	if !from.CanTransition(to) {
		return domain.GateNone, apperr.Conflict
	}
	return domain.TransitionGate(from, to, actor), nil
}

// Update validates the requested transition, enforces its gate and submits
// it. The per-order in-flight marker is cleared on success and failure alike,
// so the control stays interactive; there is no engine-level retry.
func (e *Engine) Update(ctx context.Context, req UpdateRequest) error {
	if strings.TrimSpace(req.OrderID) == "" {
		return apperr.Invalid
	}

	gate, err := e.Decide(req.From, req.To, req.Actor)
	if err != nil {
		e.failures.Inc()
		return err
	}

	switch gate {
	case domain.GateConfirm:
		if !req.Confirmed {
			return apperr.Invalid
		}
	case domain.GateComment:
		if strings.TrimSpace(req.Comment) == "" {
			return apperr.Invalid
		}
	}

	if !e.markPending(req.OrderID) {
		return apperr.Conflict
	}
	defer e.clearPending(req.OrderID)

	if gate == domain.GateVerify {
		err = e.gw.BulkUpdateStatus(ctx, []string{req.OrderID}, domain.StatusVerified)
	} else {
		u := domain.PartialOrderUpdate{ID: req.OrderID, Status: &req.To}
		if req.Comment != "" {
			u.Comment = &req.Comment
		}
		_, err = e.gw.Patch(ctx, u)
	}
	if err != nil {
		e.failures.Inc()
		e.logger.Error("status update failed",
			logx.String("order_id", req.OrderID),
			logx.String("to", string(req.To)),
			logx.Any("err", err),
		)
		return err
	}

	e.recordAudit(ctx, []domain.AuditRecord{{
		ID:         uuid.New(),
		OrderID:    req.OrderID,
		Action:     auditAction(gate),
		Status:     req.To,
		Actor:      string(req.Actor),
		Comment:    req.Comment,
		OccurredAt: e.now(),
	}})

	e.logger.Info("order status updated",
		logx.String("order_id", req.OrderID),
		logx.String("from", string(req.From)),
		logx.String("to", string(req.To)),
	)
	return nil
}

// BulkVerify moves the selected batch through the verification gate. An empty
// batch is a silent no-op.
func (e *Engine) BulkVerify(ctx context.Context, orderIDs []string) error {
	if len(orderIDs) == 0 {
		return nil
	}
	if err := e.gw.BulkUpdateStatus(ctx, orderIDs, domain.StatusVerified); err != nil {
		e.failures.Inc()
		return err
	}

	now := e.now()
	recs := make([]domain.AuditRecord, 0, len(orderIDs))
	for _, id := range orderIDs {
		recs = append(recs, domain.AuditRecord{
			ID:         uuid.New(),
			OrderID:    id,
			Action:     domain.AuditVerify,
			Status:     domain.StatusVerified,
			Actor:      string(domain.ActorFranchise),
			OccurredAt: now,
		})
	}
	e.recordAudit(ctx, recs)

	e.logger.Info("orders verified", logx.Int("count", len(orderIDs)))
	return nil
}

// Updating reports whether an update for the order is currently in flight.
func (e *Engine) Updating(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.pending[orderID]
	return ok
}

func (e *Engine) markPending(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.pending[orderID]; ok {
		return false
	}
	e.pending[orderID] = struct{}{}
	return true
}

func (e *Engine) clearPending(orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.pending, orderID)
}

func (e *Engine) recordAudit(ctx context.Context, recs []domain.AuditRecord) {
	if e.audit == nil {
		return
	}
	if err := e.audit.Record(ctx, recs); err != nil {
		e.logger.Warn("audit record failed", logx.Any("err", err))
	}
}

func auditAction(gate domain.Gate) domain.AuditAction {
	if gate == domain.GateVerify {
		return domain.AuditVerify
	}
	return domain.AuditStatusChange
}
