package tree

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const maxMergeAttempts = 5

type redisTree struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

// NewRedisTree stores each path as one hash keyed tree:{path}.
func NewRedisTree(client redis.UniversalClient, opts ...Option) Tree {
	o := buildOptions(opts)
	return &redisTree{
		client: client,
		prefix: "tree:",
		now:    o.now,
	}
}

func (r *redisTree) hashKey(path string) string {
	return r.prefix + path
}

func (r *redisTree) Get(ctx context.Context, path, key string) (*Node, error) {
	raw, err := r.client.HGet(ctx, r.hashKey(path), key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &Node{Key: key, Value: raw}, nil
}

func (r *redisTree) List(ctx context.Context, path string) ([]Node, error) {
	all, err := r.client.HGetAll(ctx, r.hashKey(path)).Result()
	if err != nil {
		return nil, err
	}
	nodes := make([]Node, 0, len(all))
	for key, raw := range all {
		nodes = append(nodes, Node{Key: key, Value: []byte(raw)})
	}
	sortByKey(nodes)
	return nodes, nil
}

func (r *redisTree) ListOrdered(ctx context.Context, path, child string) ([]Node, error) {
	nodes, err := r.List(ctx, path)
	if err != nil {
		return nil, err
	}
	sortByChild(nodes, child)
	return nodes, nil
}

func (r *redisTree) Set(ctx context.Context, path, key string, value Fields) error {
	raw, err := encodeFields(value, r.now())
	if err != nil {
		return err
	}
	return r.client.HSet(ctx, r.hashKey(path), key, raw).Err()
}

func (r *redisTree) Update(ctx context.Context, path, key string, fields Fields) error {
	hash := r.hashKey(path)

	merge := func(tx *redis.Tx) error {
		existing, err := tx.HGet(ctx, hash, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrNodeNotFound
		}
		if err != nil {
			return err
		}
		raw, err := mergeFields(existing, fields, r.now())
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, hash, key, raw)
			return nil
		})
		return err
	}

	for i := 0; i < maxMergeAttempts; i++ {
		err := r.client.Watch(ctx, merge, hash)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return fmt.Errorf("tree: update %s/%s: too much contention", path, key)
}

func (r *redisTree) SetMany(ctx context.Context, path string, values map[string]Fields) error {
	if len(values) == 0 {
		return nil
	}
	now := r.now()
	args := make([]any, 0, len(values)*2)
	for key, value := range values {
		raw, err := encodeFields(value, now)
		if err != nil {
			return err
		}
		args = append(args, key, raw)
	}
	return r.client.HSet(ctx, r.hashKey(path), args...).Err()
}

func (r *redisTree) Delete(ctx context.Context, path, key string) error {
	return r.client.HDel(ctx, r.hashKey(path), key).Err()
}
