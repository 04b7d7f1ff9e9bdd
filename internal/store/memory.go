package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// Memory is an in-process Documents implementation guarded by a single
// mutex. It backs tests and single-terminal deployments that do not
// need a database file.
type Memory struct {
	mu   sync.Mutex
	data map[string]map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.data[collection][id]
	if !ok {
		return nil, notFound(collection, id)
	}
	out := make([]byte, len(doc))
	copy(out, doc)
	return out, nil
}

func (m *Memory) List(ctx context.Context, collection string) (map[string]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.data[collection]
	out := make(map[string]json.RawMessage, len(docs))
	for id, doc := range docs {
		cp := make([]byte, len(doc))
		copy(cp, doc)
		out[id] = cp
	}
	return out, nil
}

func (m *Memory) Put(ctx context.Context, collection, id string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("put %s/%s: %w", collection, id, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[collection]; !ok {
		m.data[collection] = make(map[string][]byte)
	}
	m.data[collection][id] = raw
	return nil
}

func (m *Memory) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[collection][id]; !ok {
		return notFound(collection, id)
	}
	delete(m.data[collection], id)
	return nil
}
