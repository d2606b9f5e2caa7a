package game

import (
	"errors"
	"time"
)

// Store persists game documents keyed by record UID.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a game document, overwriting any existing document
	// with the same id.
	Save(id string, doc []byte) error

	// Load retrieves a game document.
	// Returns ErrNotFound if no document exists for id.
	Load(id string) ([]byte, error)

	// List returns metadata for every stored game, ordered by save time.
	// Returns an empty slice (not an error) when the store is empty.
	List() ([]Info, error)

	// Delete removes a stored game.
	// Returns nil if no document exists for id.
	Delete(id string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Info provides store metadata without loading the full document.
type Info struct {
	ID    string
	Saved time.Time
	Size  int64
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no document exists for the requested id.
	ErrNotFound = errors.New("game not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("game store closed")
)
