package rulestore

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore persists rule definitions to SQLite.
// It is suitable for single-process production use.
type SQLiteStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore creates a new SQLite rule store.
// The path should be a file path (e.g., "./rules.db") or ":memory:" for testing.
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
		CREATE TABLE IF NOT EXISTS rules (
			set_name TEXT NOT NULL,
			name TEXT NOT NULL,
			id TEXT NOT NULL,
			source TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (set_name, name)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_rules_set_name
		ON rules(set_name)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create index: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Save implements Store.
func (s *SQLiteStore) Save(set, name, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	// The ID assigned on first save survives updates
	_, err := s.db.Exec(`
		INSERT INTO rules (set_name, name, id, source, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(set_name, name) DO UPDATE SET
			source = excluded.source,
			updated_at = excluded.updated_at
	`, set, name, uuid.NewString(), source, time.Now().UTC().Format(time.RFC3339Nano))

	if err != nil {
		return fmt.Errorf("save rule: %w", err)
	}
	return nil
}

// Load implements Store.
func (s *SQLiteStore) Load(set, name string) (Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return Definition{}, ErrStoreClosed
	}

	var def Definition
	var updatedAt string
	err := s.db.QueryRow(`
		SELECT id, source, updated_at FROM rules
		WHERE set_name = ? AND name = ?
	`, set, name).Scan(&def.ID, &def.Source, &updatedAt)

	if err == sql.ErrNoRows {
		return Definition{}, ErrNotFound
	}
	if err != nil {
		return Definition{}, fmt.Errorf("load rule: %w", err)
	}

	def.Set = set
	def.Name = name
	def.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return def, nil
}

// List implements Store.
func (s *SQLiteStore) List(set string) ([]Definition, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`
		SELECT name, id, source, updated_at
		FROM rules
		WHERE set_name = ?
		ORDER BY name
	`, set)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	defer rows.Close()

	defs := []Definition{}
	for rows.Next() {
		var def Definition
		var updatedAt string
		if err := rows.Scan(&def.Name, &def.ID, &def.Source, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan rule: %w", err)
		}
		def.Set = set
		def.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
		defs = append(defs, def)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rules: %w", err)
	}

	return defs, nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(set, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM rules
		WHERE set_name = ? AND name = ?
	`, set, name)
	if err != nil {
		return fmt.Errorf("delete rule: %w", err)
	}
	return nil
}

// DeleteSet implements Store.
func (s *SQLiteStore) DeleteSet(set string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	_, err := s.db.Exec(`
		DELETE FROM rules WHERE set_name = ?
	`, set)
	if err != nil {
		return fmt.Errorf("delete rule set: %w", err)
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
	return s.db.Close()
}
