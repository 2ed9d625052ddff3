package ports

import (
	"context"
	"time"
)

// TrackingCache is a read-through cache for serialized tracking snapshots.
// Tracking views are derived data and may be served slightly stale; entries
// carry a short TTL and are invalidated implicitly by expiry.
type TrackingCache interface {
	// Get returns the cached snapshot for the key. The second return value
	// is false on a cache miss; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a snapshot under the key with the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
