// Package cache defines the key-value store used to memoize serialized API
// responses. Entries expire passively after their TTL; there is no explicit
// invalidation and no compare-and-swap.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
package cache

import (
	"context"
	"time"

	"github.com/go-faster/errors"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = errors.New("cache miss")

// Store is a byte-oriented key-value store with per-key TTL.
type Store interface {
	// Get returns the value stored under key, or ErrMiss when there is none.
	// Any other error means the store could not be reached.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores body under key for ttl, overwriting any previous value.
	Put(ctx context.Context, key string, body []byte, ttl time.Duration) error
	// Ping verifies the connection to the store is alive.
	Ping(ctx context.Context) error
	// Close releases the underlying client.
	Close() error
}
