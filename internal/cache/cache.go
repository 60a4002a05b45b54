package cache

import (
	"context"
	"errors"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is a typed key/value cache with per-entry TTL.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Counter counts events inside a fixed window that opens on the first Incr.
type Counter interface {
	// Incr bumps key and returns the new count. The window is only set when
	// the key is created, later calls do not extend it.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Count returns the current count, 0 once the window has closed.
	Count(ctx context.Context, key string) (int64, error)
	Reset(ctx context.Context, key string) error
}
