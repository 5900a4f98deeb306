package storage

import (
	"maps"
	"slices"
	"sync"
)

// MemoryBackend implements Backend using an in-memory map (not persistent)
type MemoryBackend struct {
	artifacts map[string][]byte
	mu        sync.RWMutex
}

// NewMemoryBackend creates a new in-memory storage backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		artifacts: make(map[string][]byte),
	}
}

// Put stores an artifact, replacing any previous content
func (m *MemoryBackend) Put(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy value to prevent external modifications
	m.artifacts[name] = slices.Clone(data)

	return nil
}

// Get retrieves an artifact by name
func (m *MemoryBackend) Get(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.artifacts[name]
	if !exists {
		return nil, nil
	}

	return slices.Clone(data), nil
}

// ForEach iterates over all artifacts in name order
func (m *MemoryBackend) ForEach(fn func(name string, data []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, name := range slices.Sorted(maps.Keys(m.artifacts)) {
		if err := fn(name, m.artifacts[name]); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of stored artifacts
func (m *MemoryBackend) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.artifacts)
}

// Close is a no-op for memory backend
func (m *MemoryBackend) Close() error {
	return nil
}
