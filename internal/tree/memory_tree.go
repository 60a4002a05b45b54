package tree

import (
	"bytes"
	"context"
	"sync"
	"time"
)

type memoryTree struct {
	mu    sync.RWMutex
	nodes map[string]map[string][]byte
	now   func() time.Time
}

// NewMemoryTree returns an in-process Tree. Values are held as encoded JSON so
// callers never share mutable state with the store.
func NewMemoryTree(opts ...Option) Tree {
	o := buildOptions(opts)
	return &memoryTree{
		nodes: make(map[string]map[string][]byte),
		now:   o.now,
	}
}

func (m *memoryTree) Get(_ context.Context, path, key string) (*Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.nodes[path][key]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return &Node{Key: key, Value: bytes.Clone(raw)}, nil
}

func (m *memoryTree) List(_ context.Context, path string) ([]Node, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	nodes := make([]Node, 0, len(m.nodes[path]))
	for key, raw := range m.nodes[path] {
		nodes = append(nodes, Node{Key: key, Value: bytes.Clone(raw)})
	}
	sortByKey(nodes)
	return nodes, nil
}

func (m *memoryTree) ListOrdered(ctx context.Context, path, child string) ([]Node, error) {
	nodes, err := m.List(ctx, path)
	if err != nil {
		return nil, err
	}
	sortByChild(nodes, child)
	return nodes, nil
}

func (m *memoryTree) Set(_ context.Context, path, key string, value Fields) error {
	raw, err := encodeFields(value, m.now())
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bucket(path)[key] = raw
	return nil
}

func (m *memoryTree) Update(_ context.Context, path, key string, fields Fields) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.nodes[path][key]
	if !ok {
		return ErrNodeNotFound
	}
	raw, err := mergeFields(existing, fields, m.now())
	if err != nil {
		return err
	}
	m.nodes[path][key] = raw
	return nil
}

func (m *memoryTree) SetMany(_ context.Context, path string, values map[string]Fields) error {
	now := m.now()
	encoded := make(map[string][]byte, len(values))
	for key, value := range values {
		raw, err := encodeFields(value, now)
		if err != nil {
			return err
		}
		encoded[key] = raw
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	bucket := m.bucket(path)
	for key, raw := range encoded {
		bucket[key] = raw
	}
	return nil
}

func (m *memoryTree) Delete(_ context.Context, path, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.nodes[path], key)
	return nil
}

func (m *memoryTree) bucket(path string) map[string][]byte {
	b, ok := m.nodes[path]
	if !ok {
		b = make(map[string][]byte)
		m.nodes[path] = b
	}
	return b
}
