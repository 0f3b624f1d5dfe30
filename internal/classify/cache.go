package classify

import "sync"

// memoCache remembers classification results keyed by axis + normalized
// text. It is deliberately not an LRU: when the cap is hit, the
// oldest-inserted half is dropped in one sweep, so callers must not assume
// recency-based retention. Each Classifier owns its own instance; the mutex
// makes one instance safe to share across requests.
type memoCache struct {
	mu      sync.Mutex
	cap     int
	order   []string
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value string
	found bool
}

func newMemoCache(capacity int) *memoCache {
	if capacity < 2 {
		capacity = 2
	}
	return &memoCache{
		cap:     capacity,
		entries: make(map[string]cacheEntry, capacity),
	}
}

func (c *memoCache) get(key string) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e, ok
}

func (c *memoCache) put(key string, e cacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.entries[key]; ok {
		c.entries[key] = e
		return
	}
	if len(c.order) >= c.cap {
		drop := c.cap / 2
		for _, k := range c.order[:drop] {
			delete(c.entries, k)
		}
		c.order = append([]string(nil), c.order[drop:]...)
	}
	c.entries[key] = e
	c.order = append(c.order, key)
}

func (c *memoCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}
