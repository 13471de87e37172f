// Package cache provides the key/value stores behind the product listing
// cache and the request rate limiter.
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indicates a cache miss.
var ErrCacheMiss = errors.New("cache miss")

// Client stores opaque values with a time to live.
type Client interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Counter counts events per key inside a fixed window.
type Counter interface {
	// Incr increments key and returns the new count and the time the
	// current window resets. The window starts with the first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error)
}

// Store is a cache that can also count.
type Store interface {
	Client
	Counter
	Close() error
}
