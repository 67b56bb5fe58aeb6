package workspace

import (
	"sync"

	"franchise-dispatch/internal/service/filters"
	"franchise-dispatch/internal/service/selection"
)

// Workspace is the per-user dashboard state the facade keeps between
// requests: the listing filters and the bulk-action selection.
type Workspace struct {
	Filters   *filters.Controller
	Selection *selection.Manager
}

// Factory builds a fresh Workspace for a user.
type Factory func(userID string) *Workspace

// Registry hands out one Workspace per dashboard user, created lazily.
type Registry struct {
	factory Factory

	mu     sync.Mutex
	byUser map[string]*Workspace
}

// NewRegistry creates a workspace Registry.
func NewRegistry(factory Factory) *Registry {
	return &Registry{
		factory: factory,
		byUser:  make(map[string]*Workspace),
	}
}

// Get returns the user's Workspace, creating it on first use.
func (r *Registry) Get(userID string) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()
	ws, ok := r.byUser[userID]
	if !ok {
		ws = r.factory(userID)
		r.byUser[userID] = ws
	}
	return ws
}

// Drop removes a user's Workspace, stopping its pending timers. Called on
// logout.
func (r *Registry) Drop(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ws, ok := r.byUser[userID]; ok {
		ws.Filters.Stop()
		delete(r.byUser, userID)
	}
}

// Len returns how many workspaces are live.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUser)
}
