package game

import (
	"sort"
	"sync"
	"time"
)

// MemoryStore is an in-memory game store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	games  map[string]storedGame
	closed bool
}

// storedGame holds a document with metadata for List().
type storedGame struct {
	doc   []byte
	saved time.Time
}

// NewMemoryStore creates a new in-memory game store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]storedGame),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(id string, doc []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	// Copy to avoid retaining the caller's slice
	stored := make([]byte, len(doc))
	copy(stored, doc)

	m.games[id] = storedGame{
		doc:   stored,
		saved: time.Now().UTC(),
	}
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(id string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent modification
	result := make([]byte, len(g.doc))
	copy(result, g.doc)
	return result, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.games))
	for id, g := range m.games {
		infos = append(infos, Info{
			ID:    id,
			Saved: g.saved,
			Size:  int64(len(g.doc)),
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Saved.Before(infos[j].Saved)
	})

	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.games, id)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	m.games = nil
	return nil
}

// Len returns the number of stored games. Useful for testing.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
