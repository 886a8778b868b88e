package engine

import "sync"

// boundedCache is a coarse-locked memo table with a hard capacity.
// With evictHalf set, hitting the cap drops the oldest-inserted half of the
// entries before the new one goes in; otherwise inserts are skipped once the
// cap is reached. Either way a cached value is never allowed to disagree
// with the uncached computation, so dropping entries is always safe.
type boundedCache[V any] struct {
	mu        sync.Mutex
	capacity  int
	evictHalf bool
	entries   map[string]V
	order     []string // insertion order, for oldest-half eviction
}

func newBoundedCache[V any](capacity int, evictHalf bool) *boundedCache[V] {
	return &boundedCache[V]{
		capacity:  capacity,
		evictHalf: evictHalf,
		entries:   make(map[string]V, capacity),
	}
}

func (c *boundedCache[V]) get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// put stores key->val subject to the capacity policy. Eviction and insert
// happen under a single lock acquisition, so readers never observe a
// half-evicted table.
func (c *boundedCache[V]) put(key string, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		c.entries[key] = val
		return
	}
	if len(c.entries) >= c.capacity {
		if !c.evictHalf {
			return
		}
		drop := len(c.order) / 2
		for _, k := range c.order[:drop] {
			delete(c.entries, k)
		}
		c.order = append(c.order[:0], c.order[drop:]...)
	}
	c.entries[key] = val
	c.order = append(c.order, key)
}

func (c *boundedCache[V]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
