package rulestore

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory rule store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	sets   map[string]map[string]Definition // set -> name -> definition
	closed bool
}

// NewMemoryStore creates a new in-memory rule store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sets: make(map[string]map[string]Definition),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(set, name, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if m.sets[set] == nil {
		m.sets[set] = make(map[string]Definition)
	}

	def, exists := m.sets[set][name]
	if !exists {
		def = Definition{
			ID:   uuid.NewString(),
			Set:  set,
			Name: name,
		}
	}
	def.Source = source
	def.UpdatedAt = time.Now().UTC()
	m.sets[set][name] = def
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(set, name string) (Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Definition{}, ErrStoreClosed
	}

	def, ok := m.sets[set][name]
	if !ok {
		return Definition{}, ErrNotFound
	}
	return def, nil
}

// List implements Store.
func (m *MemoryStore) List(set string) ([]Definition, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	defs := make([]Definition, 0, len(m.sets[set]))
	for _, def := range m.sets[set] {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(set, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.sets[set], name)
	return nil
}

// DeleteSet implements Store.
func (m *MemoryStore) DeleteSet(set string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.sets, set)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
