package game

import (
	"fmt"

	"github.com/randalmurphal/lifecycle/pkg/lifecycle/config"
)

// DefaultCapacity bounds the number of simultaneously live games when
// the config file does not say otherwise.
const DefaultCapacity = 64

// Settings are tracker settings loaded from a config file.
type Settings struct {
	// Capacity is the fixed bound on simultaneously live games.
	Capacity int

	// StorePath is the SQLite database path. Empty selects the
	// in-memory store.
	StorePath string
}

// LoadSettings reads tracker settings from a YAML, JSON, or TOML file.
// Recognized keys: "capacity", "store".
func LoadSettings(path string) (Settings, error) {
	cfg, err := config.FromFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load tracker settings: %w", err)
	}
	return Settings{
		Capacity:  cfg.Int("capacity", DefaultCapacity),
		StorePath: cfg.String("store", ""),
	}, nil
}

// NewTrackerFromSettings creates a tracker wired to the store the
// settings select. Additional options are applied after the store.
func NewTrackerFromSettings(s Settings, opts ...TrackerOption) (*Tracker, error) {
	capacity := s.Capacity
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	var store Store
	if s.StorePath != "" {
		sq, err := NewSQLiteStore(s.StorePath)
		if err != nil {
			return nil, err
		}
		store = sq
	} else {
		store = NewMemoryStore()
	}

	return NewTracker(capacity, append([]TrackerOption{WithStore(store)}, opts...)...)
}
