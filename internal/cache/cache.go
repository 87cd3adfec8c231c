package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"courtbook/internal/logger"
	"courtbook/internal/metrics"
)

// Cache is a read-through JSON snapshot cache for reference data (courts,
// coaches, equipment, pricing rules). Availability is never cached here; it
// must be recomputed from a fresh snapshot on every read.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(redisAddr string, ttl time.Duration) *Cache {
	return &Cache{
		client: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		ttl: ttl,
	}
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

// Fetch fills dest from the cache, falling back to loader on a miss and
// storing the loaded value. A failing Redis never fails the request: the
// loader result is returned and the error is only logged.
func (c *Cache) Fetch(ctx context.Context, key string, dest interface{}, loader func(context.Context) (interface{}, error)) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(data, dest); jsonErr == nil {
			metrics.RecordCacheHit(key)
			return nil
		}
		// Corrupt entry, treat as a miss.
	} else if !errors.Is(err, redis.Nil) {
		logger.Debugf("cache read failed for %s: %v", key, err)
	}

	metrics.RecordCacheMiss(key)

	value, err := loader(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(encoded, dest); err != nil {
		return err
	}

	if err := c.client.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
		logger.Debugf("cache write failed for %s: %v", key, err)
	}

	return nil
}

// Invalidate drops the given keys, used when an admin edits reference data.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Debugf("cache invalidation failed: %v", err)
	}
}
