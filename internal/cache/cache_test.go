package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revoked struct {
	AdminID string `json:"admin_id"`
}

func newRedis(t *testing.T) (*miniredis.Miniredis, redis.UniversalClient) {
	t.Helper()
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestCaches(t *testing.T) {
	_, client := newRedis(t)
	mem := NewMemoryCache[revoked]()
	t.Cleanup(mem.Stop)

	caches := map[string]Cache[revoked]{
		MemoryBackend: mem,
		RedisBackend:  NewRedisCache[revoked](client, "revoked:", 0),
	}

	for name, c := range caches {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := c.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrCacheMiss)

			require.NoError(t, c.Set(ctx, "tok-1", revoked{AdminID: "a1"}, time.Minute))
			v, err := c.Get(ctx, "tok-1")
			require.NoError(t, err)
			assert.Equal(t, "a1", v.AdminID)

			require.NoError(t, c.Delete(ctx, "tok-1"))
			_, err = c.Get(ctx, "tok-1")
			assert.ErrorIs(t, err, ErrCacheMiss)
		})
	}
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCacheWithOptions[string](4, 10*time.Millisecond)
	defer c.Stop()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "short", "v", 20*time.Millisecond))
	require.NoError(t, c.Set(ctx, "forever", "v", 0))

	assert.Eventually(t, func() bool {
		_, err := c.Get(ctx, "short")
		return err == ErrCacheMiss
	}, time.Second, 10*time.Millisecond)

	v, err := c.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
}

func TestMemoryCache_StopTwice(t *testing.T) {
	c := NewMemoryCache[int]()
	c.Stop()
	assert.NotPanics(t, c.Stop)
}

func TestRedisCache_Layout(t *testing.T) {
	s, client := newRedis(t)
	c := NewRedisCache[revoked](client, "revoked:", 0)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "tok", revoked{AdminID: "a9"}, time.Hour))
	assert.True(t, s.Exists("revoked:tok"))
	assert.Equal(t, time.Hour, s.TTL("revoked:tok"))

	s.FastForward(2 * time.Hour)
	_, err := c.Get(ctx, "tok")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_BadPayload(t *testing.T) {
	s, client := newRedis(t)
	c := NewRedisCache[revoked](client, "revoked:", 0)
	require.NoError(t, s.Set("revoked:bad", "{not json"))

	_, err := c.Get(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)
}

func TestCounters(t *testing.T) {
	s, client := newRedis(t)
	mem := NewMemoryCounter()
	t.Cleanup(mem.Stop)

	counters := map[string]Counter{
		MemoryBackend: mem,
		RedisBackend:  NewRedisCounter(client, "throttle:"),
	}

	for name, c := range counters {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for want := int64(1); want <= 3; want++ {
				n, err := c.Incr(ctx, "login:a@b.c", time.Minute)
				require.NoError(t, err)
				assert.Equal(t, want, n)
			}

			count, err := c.Count(ctx, "login:a@b.c")
			require.NoError(t, err)
			assert.Equal(t, int64(3), count)

			require.NoError(t, c.Reset(ctx, "login:a@b.c"))
			count, err = c.Count(ctx, "login:a@b.c")
			require.NoError(t, err)
			assert.Zero(t, count)

			n, err := c.Incr(ctx, "login:a@b.c", time.Minute)
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}

	t.Run("redis window opens on first hit", func(t *testing.T) {
		c := NewRedisCounter(client, "throttle:")
		ctx := context.Background()

		_, err := c.Incr(ctx, "w", 15*time.Minute)
		require.NoError(t, err)
		s.FastForward(10 * time.Minute)
		_, err = c.Incr(ctx, "w", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, 5*time.Minute, s.TTL("throttle:w"))

		s.FastForward(6 * time.Minute)
		n, err := c.Incr(ctx, "w", 15*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("memory window expires", func(t *testing.T) {
		c := NewMemoryCounter()
		defer c.Stop()
		ctx := context.Background()

		_, err := c.Incr(ctx, "w", 20*time.Millisecond)
		require.NoError(t, err)
		time.Sleep(40 * time.Millisecond)
		n, err := c.Incr(ctx, "w", 20*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
