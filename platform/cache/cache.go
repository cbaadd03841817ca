// Package cache provides Redis-backed caching infrastructure.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"time"

	"hangout_backend/platform/config"

	"github.com/redis/go-redis/v9"
)

// Cache wraps a Redis client for JSON payload caching.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New creates a cache from the configured Redis URL. Returns nil when no
// Redis URL is configured; callers treat a nil cache as disabled.
func New(cfg config.RedisConfig, ttl time.Duration) (*Cache, error) {
	if cfg.GetRedisURL() == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.GetRedisURL())
	if err != nil {
		return nil, err
	}

	return &Cache{
		client: redis.NewClient(opt),
		ttl:    ttl,
	}, nil
}

// NewWithClient creates a cache around an existing client. Used in tests.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or false when absent.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set stores payload under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, payload []byte) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
