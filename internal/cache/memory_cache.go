package cache

import (
	"context"
	"errors"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

func (i item[V]) expired(now int64) bool {
	return i.expiration > 0 && now > i.expiration
}

type shard[V any] struct {
	sync.Mutex
	items map[string]item[V]
}

type MemoryCache[V any] struct {
	shards []*shard[V]
	quit   chan struct{}
	once   sync.Once
}

// NewMemoryCache creates a 64-shard cache swept every second.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](64, time.Second)
}

func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]item[V])}
	}
	go mc.janitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

func (mc *MemoryCache[V]) shardFor(key string) *shard[V] {
	const offset, prime = 2166136261, 16777619
	h := uint32(offset)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return mc.shards[int(h%uint32(len(mc.shards)))]
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	var zero V
	s := mc.shardFor(key)

	s.Lock()
	defer s.Unlock()
	itm, ok := s.items[key]
	if !ok {
		return zero, ErrCacheMiss
	}
	if itm.expired(time.Now().UnixNano()) {
		delete(s.items, key)
		return zero, ErrCacheMiss
	}
	return itm.value, nil
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	s := mc.shardFor(key)
	s.Lock()
	s.items[key] = item[V]{value: value, expiration: expiry(ttl)}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.shardFor(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now().UnixNano()
			for _, s := range mc.shards {
				s.Lock()
				for k, itm := range s.items {
					if itm.expired(now) {
						delete(s.items, k)
					}
				}
				s.Unlock()
			}
		case <-mc.quit:
			return
		}
	}
}

func expiry(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return time.Now().Add(ttl).UnixNano()
}

// MemoryCounter is a Counter kept in a MemoryCache.
type MemoryCounter struct {
	*MemoryCache[int64]
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{MemoryCache: NewMemoryCache[int64]()}
}

func (mc *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	s := mc.shardFor(key)
	s.Lock()
	defer s.Unlock()

	itm, ok := s.items[key]
	if !ok || itm.expired(time.Now().UnixNano()) {
		itm = item[int64]{expiration: expiry(window)}
	}
	itm.value++
	s.items[key] = itm
	return itm.value, nil
}

func (mc *MemoryCounter) Count(ctx context.Context, key string) (int64, error) {
	n, err := mc.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return 0, nil
	}
	return n, err
}

func (mc *MemoryCounter) Reset(ctx context.Context, key string) error {
	return mc.Delete(ctx, key)
}
