package docstore

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a process-local Store. It holds marshaled documents so Get
// always returns an independent copy, matching the Redis implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
	sets map[string]map[string]struct{}
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string][]byte),
		sets: make(map[string]map[string]struct{}),
	}
}

func (m *MemoryStore) Get(_ context.Context, key string, v any) (bool, error) {
	m.mu.RLock()
	raw, ok := m.docs[key]
	m.mu.RUnlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, v)
}

func (m *MemoryStore) Set(_ context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.docs[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) SetNX(_ context.Context, key string, v any) (bool, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.docs[key]; exists {
		return false, nil
	}
	m.docs[key] = raw
	return true, nil
}

func (m *MemoryStore) AddToSet(_ context.Context, set, member string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sets[set]
	if !ok {
		s = make(map[string]struct{})
		m.sets[set] = s
	}
	s[member] = struct{}{}
	return nil
}

func (m *MemoryStore) SetMembers(_ context.Context, set string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	members := make([]string, 0, len(m.sets[set]))
	for member := range m.sets[set] {
		members = append(members, member)
	}
	return members, nil
}

func (m *MemoryStore) SetContains(_ context.Context, set, member string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sets[set][member]
	return ok, nil
}
