// Package store persists time-bounded warehouse fetch results so
// repeated requests within the TTL window skip the warehouse entirely.
package store

import (
	"context"
	"time"
)

// Cache is the fetch-result cache keyed by (function, arguments).
type Cache interface {
	// Get returns the cached payload for key, or ok=false when the key
	// is absent or expired.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Set stores payload under key with the given TTL, replacing any
	// previous entry.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// PurgeExpired deletes expired rows and reports how many went.
	PurgeExpired(ctx context.Context) (int, error)

	Migrate(ctx context.Context) error
	Close() error
}
