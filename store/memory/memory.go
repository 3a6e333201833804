// Package memory provides a process-local store.Store.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/katalvlaran/gridpath/store"
)

// MemoryStore keeps encoded records in a map. Records are stored in their
// JSON form, so a loaded graph never aliases a saved one.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// Save stores rec under key.
func (m *MemoryStore) Save(_ context.Context, key string, rec store.Record) error {
	if err := store.ValidateKey(key); err != nil {
		return err
	}
	data, err := store.Marshal(rec)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = data

	return nil
}

// Load returns the record stored under key.
func (m *MemoryStore) Load(_ context.Context, key string) (store.Record, error) {
	m.mu.RLock()
	data, ok := m.records[key]
	m.mu.RUnlock()
	if !ok {
		return store.Record{}, fmt.Errorf("%w: %s", store.ErrNotFound, key)
	}

	return store.Unmarshal(data)
}

// Delete removes key.
func (m *MemoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)

	return nil
}

// List returns all keys in ascending order.
func (m *MemoryStore) List(_ context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.records))
	for k := range m.records {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys, nil
}
