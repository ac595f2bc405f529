// Package cache holds the rendered-page cache behind the revalidation
// endpoint. Public HTML responses are stored per request path; an admin save
// calls /api/revalidate to drop the entry so the next request re-renders.
package cache

import (
	"context"
	"time"
)

// DefaultTTL bounds how long a rendered page may be served without a
// revalidation. Revalidation normally invalidates much earlier.
const DefaultTTL = 12 * time.Hour

// PageCache stores rendered HTML keyed by request path.
type PageCache interface {
	// Get returns the cached HTML for a path, or ok=false on a miss.
	Get(ctx context.Context, path string) (html string, ok bool)
	// Set stores the rendered HTML for a path.
	Set(ctx context.Context, path, html string) error
	// Invalidate drops the cached entry for a path. Missing entries are not
	// an error; concurrent invalidations simply invalidate redundantly.
	Invalidate(ctx context.Context, path string) error
}

// Options selects and configures a cache backend.
type Options struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// New picks the Redis backend when an address is configured and falls back
// to the in-process cache otherwise.
func New(opts Options) (PageCache, error) {
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	if opts.RedisAddr != "" {
		return NewRedisCache(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, ttl)
	}
	return NewMemoryCache(ttl), nil
}
