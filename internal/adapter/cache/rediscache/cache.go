// Package rediscache backs the description cache with Redis. Entries are
// idempotent rewrites keyed by content hash, so last-writer-wins is fine.
package rediscache

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avenira/orient-api/internal/domain"
)

// Cache implements domain.DescriptionCache.
type Cache struct {
	rdb *redis.Client
}

// New constructs a Cache.
func New(rdb *redis.Client) *Cache { return &Cache{rdb: rdb} }

var _ domain.DescriptionCache = (*Cache)(nil)

// Get returns the cached value and whether the key was present.
func (c *Cache) Get(ctx domain.Context, key string) (string, bool, error) {
	v, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("op=rediscache.Get: %w", err)
	}
	return v, true, nil
}

// Set stores value under key for ttl.
func (c *Cache) Set(ctx domain.Context, key, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("op=rediscache.Set: %w", err)
	}
	return nil
}
