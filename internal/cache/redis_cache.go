package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultOpTimeout = 50 * time.Millisecond

// RedisCache stores JSON encoded values under prefix+key.
type RedisCache[V any] struct {
	client    redis.UniversalClient
	prefix    string
	opTimeout time.Duration
}

// NewRedisCache shares client with the rest of the process. A zero opTimeout
// falls back to 50ms per call.
func NewRedisCache[V any](client redis.UniversalClient, prefix string, opTimeout time.Duration) *RedisCache[V] {
	if opTimeout == 0 {
		opTimeout = defaultOpTimeout
	}
	return &RedisCache[V]{client: client, prefix: prefix, opTimeout: opTimeout}
}

func (r *RedisCache[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, ErrCacheMiss
	}
	if err != nil {
		return zero, err
	}
	var val V
	if err := json.Unmarshal(data, &val); err != nil {
		return zero, err
	}
	return val, nil
}

func (r *RedisCache[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if ttl < 0 {
		ttl = 0
	}

	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Set(ctx, r.prefix+key, data, ttl).Err()
}

func (r *RedisCache[V]) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, r.prefix+key).Err()
}

// RedisCounter implements Counter with INCR, expiring the key on first use.
type RedisCounter struct {
	client    redis.UniversalClient
	prefix    string
	opTimeout time.Duration
}

func NewRedisCounter(client redis.UniversalClient, prefix string) *RedisCounter {
	return &RedisCounter{client: client, prefix: prefix, opTimeout: defaultOpTimeout}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	n, err := r.client.Incr(ctx, r.prefix+key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && window > 0 {
		if err := r.client.Expire(ctx, r.prefix+key, window).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (r *RedisCounter) Count(ctx context.Context, key string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	n, err := r.client.Get(ctx, r.prefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return n, err
}

func (r *RedisCounter) Reset(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	return r.client.Del(ctx, r.prefix+key).Err()
}
