package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON cache over Redis. A nil *Cache is valid and behaves
// as a cache that never hits, so callers do not branch on whether Redis is
// configured.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New returns a Cache backed by the given client. Pass a nil client to
// disable caching.
func New(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get unmarshals the cached value for key into out. Returns false on miss,
// on any Redis error, or when caching is disabled.
func (c *Cache) Get(ctx context.Context, key string, out any) bool {
	if c == nil || c.ttl <= 0 {
		return false
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

// Set stores val under key, best effort.
func (c *Cache) Set(ctx context.Context, key string, val any) {
	if c == nil || c.ttl <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, data, c.ttl).Err()
}

// Delete drops the given keys, best effort.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	_ = c.rdb.Del(ctx, keys...).Err()
}
