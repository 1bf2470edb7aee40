package registry

import "sync"

// MemoryStore is an in-process Store that keeps groups in insertion order.
// Sets counts every Set call so callers can tell whether a write happened.
type MemoryStore struct {
	mu     sync.Mutex
	order  []string
	groups map[string][]CommandEntry
	Sets   int
}

// NewMemoryStore returns a MemoryStore seeded with groups.
func NewMemoryStore(groups ...Group) *MemoryStore {
	m := &MemoryStore{groups: map[string][]CommandEntry{}}
	for _, g := range groups {
		m.put(g.Name, g.Commands)
	}
	return m
}

// Has reports whether group exists.
func (m *MemoryStore) Has(group string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.groups[group]
	return ok, nil
}

// Get returns a copy of the commands of group.
func (m *MemoryStore) Get(group string) ([]CommandEntry, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries, ok := m.groups[group]
	if !ok {
		return nil, false, nil
	}
	return append([]CommandEntry{}, entries...), true, nil
}

// Set overwrites the commands of group.
func (m *MemoryStore) Set(group string, entries []CommandEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sets++
	m.put(group, entries)
	return nil
}

// All returns copies of every group in insertion order.
func (m *MemoryStore) All() ([]Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Group, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, Group{Name: name, Commands: append([]CommandEntry{}, m.groups[name]...)})
	}
	return out, nil
}

func (m *MemoryStore) put(group string, entries []CommandEntry) {
	if _, ok := m.groups[group]; !ok {
		m.order = append(m.order, group)
	}
	m.groups[group] = append([]CommandEntry{}, entries...)
}
