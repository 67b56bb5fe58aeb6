package filters

import (
	"sync"
	"time"

	"franchise-dispatch/internal/domain"
)

// Listener receives the query every time the filter state settles. Search
// edits settle after the debounce window; everything else settles immediately.
type Listener func(domain.OrderQuery)

// Controller owns the listing filter state: page, fixed page size, debounced
// free-text search, status, delivery type, assignment state and date range.
// Any change other than the page resets the page to 1.
type Controller struct {
	debounce time.Duration
	listener Listener

	mu    sync.Mutex
	query domain.OrderQuery
	timer *time.Timer
}

// NewController creates a filter Controller for one franchise. The listener
// may be nil when the caller only ever pulls Query snapshots.
func NewController(franchise string, pageSize int, debounce time.Duration, listener Listener) *Controller {
	return &Controller{
		debounce: debounce,
		listener: listener,
		query: domain.OrderQuery{
			Franchise: franchise,
			Page:      1,
			PageSize:  pageSize,
		},
	}
}

// Query returns a snapshot of the current query.
func (c *Controller) Query() domain.OrderQuery {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// SetPage moves to another page without touching the other filters.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.mu.Lock()
	c.query.Page = page
	q := c.query
	c.mu.Unlock()
	c.notify(q)
}

// SetStatus narrows the listing to one status; the zero value means any.
func (c *Controller) SetStatus(status domain.OrderStatus) {
	c.apply(func(q *domain.OrderQuery) { q.Status = status })
}

// SetDeliveryType narrows the listing to one delivery type.
func (c *Controller) SetDeliveryType(dt domain.DeliveryType) {
	c.apply(func(q *domain.OrderQuery) { q.DeliveryType = dt })
}

// SetAssignment narrows the listing by assignment state.
func (c *Controller) SetAssignment(f domain.AssignmentFilter) {
	c.apply(func(q *domain.OrderQuery) { q.IsAssigned = f })
}

// SetDateRange narrows the listing to orders created inside the range. Zero
// values leave the corresponding end open.
func (c *Controller) SetDateRange(start, end time.Time) {
	c.apply(func(q *domain.OrderQuery) {
		q.StartDate = start
		q.EndDate = end
	})
}

// SetSearch updates the free-text search. The listener fires once per settled
// term: each call cancels the pending timer, so a burst of keystrokes inside
// the debounce window produces a single downstream query.
func (c *Controller) SetSearch(term string) {
	c.mu.Lock()
	c.query.Search = term
	c.query.Page = 1
	q := c.query
	if c.timer != nil {
		c.timer.Stop()
	}
	if c.listener == nil {
		c.mu.Unlock()
		return
	}
	c.timer = time.AfterFunc(c.debounce, func() { c.listener(q) })
	c.mu.Unlock()
}

// Reset restores the default query, keeping franchise and page size.
func (c *Controller) Reset() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.query = domain.OrderQuery{
		Franchise: c.query.Franchise,
		Page:      1,
		PageSize:  c.query.PageSize,
	}
	q := c.query
	c.mu.Unlock()
	c.notify(q)
}

// Stop cancels any pending debounced search. Called on teardown.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// apply mutates the query under the lock, resets the page and notifies.
func (c *Controller) apply(mutate func(*domain.OrderQuery)) {
	c.mu.Lock()
	mutate(&c.query)
	c.query.Page = 1
	q := c.query
	c.mu.Unlock()
	c.notify(q)
}

func (c *Controller) notify(q domain.OrderQuery) {
	if c.listener != nil {
		c.listener(q)
	}
}
