package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "suncoop:page:"

// RedisCache is the shared PageCache used when multiple instances serve the
// site behind one Redis.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection.
func NewRedisCache(addr, password string, dbIndex int, ttl time.Duration) (*RedisCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       dbIndex,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get returns the cached HTML for a path.
func (c *RedisCache) Get(ctx context.Context, path string) (string, bool) {
	html, err := c.client.Get(ctx, redisKeyPrefix+path).Result()
	if err != nil {
		return "", false
	}
	return html, true
}

// Set stores the rendered HTML for a path with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, path, html string) error {
	if err := c.client.Set(ctx, redisKeyPrefix+path, html, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache page %s: %w", path, err)
	}
	return nil
}

// Invalidate drops the cached entry for a path.
func (c *RedisCache) Invalidate(ctx context.Context, path string) error {
	if err := c.client.Del(ctx, redisKeyPrefix+path).Err(); err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("invalidate page %s: %w", path, err)
	}
	return nil
}
