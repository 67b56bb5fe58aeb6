package selection

import (
	"context"
	"sort"
	"sync"

	"franchise-dispatch/internal/domain"
	"franchise-dispatch/internal/logx"
)

// Manager holds the set of orders picked for a bulk action and gates the bulk
// operations on it. The set is page-scoped: callers reset it whenever the
// underlying order list changes.
type Manager struct {
	verifier Verifier
	assigner Assigner
	logger   logx.Logger

	mu       sync.Mutex
	selected map[string]struct{}
}

// NewManager creates a selection Manager.
func NewManager(verifier Verifier, assigner Assigner, logger logx.Logger) *Manager {
	return &Manager{
		verifier: verifier,
		assigner: assigner,
		logger:   logger,
		selected: make(map[string]struct{}),
	}
}

// Toggle flips membership of one order id.
func (m *Manager) Toggle(orderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.selected[orderID]; ok {
		delete(m.selected, orderID)
		return
	}
	m.selected[orderID] = struct{}{}
}

// ToggleAll is page-scoped select-all: if the selection already covers every
// visible order it clears, otherwise it selects all visible ids.
func (m *Manager) ToggleAll(visibleIDs []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.selected) == len(visibleIDs) {
		m.selected = make(map[string]struct{})
		return
	}
	m.selected = make(map[string]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		m.selected[id] = struct{}{}
	}
}

// Selected reports whether an order id is in the set.
func (m *Manager) Selected(orderID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.selected[orderID]
	return ok
}

// IDs returns the selected ids in sorted order.
func (m *Manager) IDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.idsLocked()
}

// Len returns the selection size.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.selected)
}

// Clear empties the selection. Called on page navigation and filter changes.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = make(map[string]struct{})
}

// BulkVerify verifies every selected order. An empty selection is a silent
// no-op; the selection is cleared only on success.
func (m *Manager) BulkVerify(ctx context.Context) error {
	m.mu.Lock()
	ids := m.idsLocked()
	m.mu.Unlock()
	if len(ids) == 0 {
		return nil
	}

	if err := m.verifier.BulkVerify(ctx, ids); err != nil {
		m.logger.Error("bulk verify failed", logx.Any("err", err))
		return err
	}
	m.Clear()
	return nil
}

// BulkAssign assigns the rider to every selected order. An empty selection is
// a silent no-op; the selection is cleared only on full success.
func (m *Manager) BulkAssign(ctx context.Context, riderID string) (domain.AssignResult, error) {
	m.mu.Lock()
	ids := m.idsLocked()
	m.mu.Unlock()
	if len(ids) == 0 {
		return domain.AssignResult{}, nil
	}

	res, err := m.assigner.Assign(ctx, ids, riderID)
	if err != nil {
		m.logger.Error("bulk assign failed",
			logx.String("rider_id", riderID),
			logx.Any("err", err),
		)
		return res, err
	}
	m.Clear()
	return res, nil
}

func (m *Manager) idsLocked() []string {
	ids := make([]string, 0, len(m.selected))
	for id := range m.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
