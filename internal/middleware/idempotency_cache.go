package middleware

import (
	"sync"
	"time"
)

// cachedResponse is a stored response replayed for a repeated key.
type cachedResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
	StoredAt    time.Time
}

// IdempotencyCache keeps recent responses in memory, keyed by a digest of
// the idempotency key, method, path and body. Entries expire after ttl and
// the oldest entry is evicted once maxEntries is reached.
type IdempotencyCache struct {
	mu         sync.Mutex
	items      map[string]*cachedResponse
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// NewIdempotencyCache creates a cache and starts its cleanup loop.
func NewIdempotencyCache(ttl time.Duration, maxEntries int) *IdempotencyCache {
	c := &IdempotencyCache{
		items:      make(map[string]*cachedResponse),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
	go c.cleanupLoop()
	return c
}

func (c *IdempotencyCache) get(key string) (*cachedResponse, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.items[key]
	if !ok || c.now().Sub(resp.StoredAt) > c.ttl {
		return nil, false
	}
	return resp, true
}

func (c *IdempotencyCache) set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.StoredAt = c.now()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.items[key] = resp
}

func (c *IdempotencyCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	for k, v := range c.items {
		if oldestKey == "" || v.StoredAt.Before(oldest) {
			oldestKey, oldest = k, v.StoredAt
		}
	}
	delete(c.items, oldestKey)
}

// Len returns the number of stored responses, expired ones included.
func (c *IdempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

func (c *IdempotencyCache) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *IdempotencyCache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.StoredAt) > c.ttl {
			delete(c.items, key)
		}
	}
}

// Stop ends the cleanup loop.
func (c *IdempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}
