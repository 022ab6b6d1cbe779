package storage

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps every key in memory. The file backend flushes it to
// disk through FileManager; Dirty reports unsaved writes since the last
// flush.
type MemoryStore struct {
	mu    sync.RWMutex
	data  map[string]string
	dirty bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.data[key]
	return val, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.dirty = true
	return nil
}

func (m *MemoryStore) Remove(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			m.dirty = true
		}
	}
	return nil
}

func (m *MemoryStore) MultiGet(_ context.Context, keys ...string) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if v, ok := m.data[k]; ok {
			out[k] = v
		}
	}
	return out, nil
}

func (m *MemoryStore) MultiSet(_ context.Context, pairs map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	maps.Copy(m.data, pairs)
	if len(pairs) > 0 {
		m.dirty = true
	}
	return nil
}

func (m *MemoryStore) Close() error { return nil }

// Snapshot returns a copy of all values and clears the dirty flag.
func (m *MemoryStore) Snapshot() map[string]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirty = false
	return maps.Clone(m.data)
}

// MarkDirty re-flags the store after a failed flush.
func (m *MemoryStore) MarkDirty() {
	m.mu.Lock()
	m.dirty = true
	m.mu.Unlock()
}

func (m *MemoryStore) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

// Replace swaps the whole content, used when restoring from disk.
func (m *MemoryStore) Replace(values map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if values == nil {
		values = make(map[string]string)
	}
	m.data = values
	m.dirty = false
}

func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
