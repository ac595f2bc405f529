package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	html      string
	expiresAt time.Time
}

// MemoryCache is the in-process PageCache used when Redis is not configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration

	// now is swapped in tests to control expiry.
	now func() time.Time
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the cached HTML for a path. Expired entries are dropped lazily.
func (c *MemoryCache) Get(_ context.Context, path string) (string, bool) {
	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if !ok {
		return "", false
	}

	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, path)
		c.mu.Unlock()
		return "", false
	}

	return entry.html, true
}

// Set stores the rendered HTML for a path.
func (c *MemoryCache) Set(_ context.Context, path, html string) error {
	c.mu.Lock()
	c.entries[path] = memoryEntry{html: html, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

// Invalidate drops the cached entry for a path.
func (c *MemoryCache) Invalidate(_ context.Context, path string) error {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
	return nil
}
