// Package history keeps an optional sqlite ledger of dictionary builds.
// The ledger never affects the dictionary output itself.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Build is one recorded dictionary build
type Build struct {
	ID         int64
	CreatedAt  time.Time
	OutputPath string
	WordCount  int
}

// Store is a sqlite-backed ledger of dictionary builds
type Store struct {
	db *sql.DB
}

// Open opens the history database at path, creating it and its schema if
// necessary. The caller must Close the returned store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS builds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		created_at INTEGER NOT NULL,
		output_path TEXT NOT NULL,
		word_count INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create builds table: %w", err)
	}

	return &Store{db: db}, nil
}

// Record appends one build to the ledger
func (s *Store) Record(b Build) error {
	_, err := s.db.Exec(
		"INSERT INTO builds (created_at, output_path, word_count) VALUES (?, ?, ?)",
		b.CreatedAt.UnixMilli(), b.OutputPath, b.WordCount,
	)
	if err != nil {
		return fmt.Errorf("failed to record build: %w", err)
	}
	return nil
}

// List returns all recorded builds, newest first
func (s *Store) List() ([]Build, error) {
	rows, err := s.db.Query(
		"SELECT id, created_at, output_path, word_count FROM builds ORDER BY created_at DESC, id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var b Build
		var millis int64
		if err := rows.Scan(&b.ID, &millis, &b.OutputPath, &b.WordCount); err != nil {
			return nil, fmt.Errorf("failed to scan build row: %w", err)
		}
		b.CreatedAt = time.UnixMilli(millis)
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read build rows: %w", err)
	}

	return builds, nil
}

// PruneBefore deletes builds recorded before cutoff and reports how many
// rows were removed
func (s *Store) PruneBefore(cutoff time.Time) (int64, error) {
	result, err := s.db.Exec("DELETE FROM builds WHERE created_at < ?", cutoff.UnixMilli())
	if err != nil {
		return 0, fmt.Errorf("failed to prune builds: %w", err)
	}
	return result.RowsAffected()
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}
