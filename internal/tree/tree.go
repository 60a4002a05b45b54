// Package tree is a hierarchical JSON document store addressed as {path}/{key}.
package tree

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	MemoryBackend   = "memory"
	RedisBackend    = "redis"
	PostgresBackend = "postgres"
)

var ErrNodeNotFound = errors.New("tree: node not found")

// Fields is a record, or a subset of one, as written to the tree.
type Fields map[string]any

type serverValue string

// ServerTimestamp is replaced by the backend clock, in Unix milliseconds,
// wherever it appears in written Fields.
const ServerTimestamp serverValue = "timestamp"

// Node is a single record read from the tree.
type Node struct {
	Key   string
	Value json.RawMessage
}

// Decode unmarshals the node value into v.
func (n Node) Decode(v any) error {
	return json.Unmarshal(n.Value, v)
}

// Fields returns the node value as a field map. Numbers are kept as json.Number
// so re-encoding does not alter them.
func (n Node) Fields() (Fields, error) {
	return decodeFields(n.Value)
}

// Tree is our store interface.
type Tree interface {
	// Get returns the node at path/key or ErrNodeNotFound.
	Get(ctx context.Context, path, key string) (*Node, error)
	// List returns every node under path ordered by key; empty when none exist.
	List(ctx context.Context, path string) ([]Node, error)
	// ListOrdered returns every node under path ordered ascending by the
	// numeric child field. Missing children sort as 0, ties keep key order.
	ListOrdered(ctx context.Context, path, child string) ([]Node, error)
	// Set writes the full record at path/key, replacing any previous value.
	Set(ctx context.Context, path, key string, value Fields) error
	// Update merges fields into the existing record or returns ErrNodeNotFound.
	Update(ctx context.Context, path, key string, fields Fields) error
	// SetMany writes several full records under path in one call.
	SetMany(ctx context.Context, path string, values map[string]Fields) error
	// Delete removes path/key. Deleting a missing node is not an error.
	Delete(ctx context.Context, path, key string) error
}

// NewKey returns a unique key that sorts by creation time.
func NewKey() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Option configures a backend.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock overrides the clock used to resolve ServerTimestamp.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
