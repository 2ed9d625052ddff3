// Package rediscache implements the tracking cache port on top of Redis.
// Tracking snapshots are derived data with a short TTL, so entries are
// invalidated implicitly by expiry and a flushed cache is never a problem.
package rediscache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisCache stores serialized tracking snapshots in Redis.
type RedisCache struct {
	c *redis.Client
}

// New creates a cache backed by the Redis instance at addr.
func New(addr string) *RedisCache {
	return &RedisCache{
		c: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

// Get returns the cached snapshot for the key. A missing key is reported
// through the bool, not as an error.
func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.c.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return val, true, nil
}

// Set stores a snapshot under the key with the given TTL.
func (r *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.c.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Close releases the underlying Redis connection.
func (r *RedisCache) Close() error {
	return r.c.Close()
}
