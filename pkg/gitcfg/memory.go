package gitcfg

import "sync"

// MemoryStore is a mutable, map-backed Store. It is the programmatic
// counterpart to a decoded config file and the usual backing for tests.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Set stores value under the given address, replacing any previous value.
func (m *MemoryStore) Set(section, subsection, name, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[addr(section, subsection, name)] = value
}

// Unset removes the key at the given address, if present.
func (m *MemoryStore) Unset(section, subsection, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, addr(section, subsection, name))
}

// Lookup implements Store.
func (m *MemoryStore) Lookup(section, subsection, name string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[addr(section, subsection, name)]
	return v, ok
}
