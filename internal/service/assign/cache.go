package assign

import "sync"

// Cache is the local order → rider map. It is a hint for the UI between
// refreshes, only ever written after the server confirmed a mutation.
type Cache struct {
	mu     sync.RWMutex
	riders map[string]string
}

// NewCache returns an empty assignment cache.
func NewCache() *Cache {
	return &Cache{riders: make(map[string]string)}
}

// Get returns the cached rider for an order, if any.
func (c *Cache) Get(orderID string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.riders[orderID]
	return r, ok
}

// Set records the rider for one order.
func (c *Cache) Set(orderID, riderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.riders[orderID] = riderID
}

// SetAll records the rider for a batch of orders.
func (c *Cache) SetAll(orderIDs []string, riderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range orderIDs {
		c.riders[id] = riderID
	}
}

// Delete drops the cached rider for an order.
func (c *Cache) Delete(orderID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.riders, orderID)
}

// Len returns the number of cached assignments.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.riders)
}
