package game

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// savedLayout is fixed-width so the TEXT column sorts chronologically.
const savedLayout = "2006-01-02T15:04:05.000000000Z"

// SQLiteStore persists game documents to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite game store.
// The path should be a file path (e.g., "./games.db") or ":memory:" for testing.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			saved TEXT NOT NULL,
			doc BLOB NOT NULL
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(id string, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		INSERT INTO games (id, saved, doc)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			saved = excluded.saved,
			doc = excluded.doc
	`, id, time.Now().UTC().Format(savedLayout), doc)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	var doc []byte
	err := s.db.QueryRow(`SELECT doc FROM games WHERE id = ?`, id).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game: %w", err)
	}
	return doc, nil
}

// List implements Store.
func (s *SQLiteStore) List() ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT id, saved, LENGTH(doc)
		FROM games
		ORDER BY saved
	`)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}
	defer rows.Close()

	infos := make([]Info, 0)
	for rows.Next() {
		var (
			info  Info
			saved string
		)
		if err := rows.Scan(&info.ID, &saved, &info.Size); err != nil {
			return nil, fmt.Errorf("scan game row: %w", err)
		}
		ts, err := time.Parse(savedLayout, saved)
		if err != nil {
			return nil, fmt.Errorf("parse saved timestamp: %w", err)
		}
		info.Saved = ts
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate game rows: %w", err)
	}
	return infos, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`DELETE FROM games WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	return nil
}
