// Package history persists a log of solves served by the web API in a
// SQLite database, so a client can look back at recent requests.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one completed solve request.
type Entry struct {
	ID         string
	RequestedAt time.Time
	Scramble   string
	Solution   string
	MoveCount  int
	DurationMs int64
}

// Store wraps a SQLite-backed solve log.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS solves (
	id           TEXT PRIMARY KEY,
	requested_at TEXT NOT NULL,
	scramble     TEXT NOT NULL,
	solution     TEXT NOT NULL,
	move_count   INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL
);
`

// Open opens (or creates) the SQLite database at path and ensures its
// schema exists. path may be ":memory:" for an ephemeral, process-local log.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: migrate schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a completed solve and returns its generated ID.
func (s *Store) Record(scramble, solution string, moveCount int, duration time.Duration) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO solves (id, requested_at, scramble, solution, move_count, duration_ms) VALUES (?, ?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format("2006-01-02T15:04:05.000000000Z07:00"), scramble, solution, moveCount, duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("history: record solve: %w", err)
	}
	return id, nil
}

// Recent returns up to limit solves, most recent first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, requested_at, scramble, solution, move_count, duration_ms FROM solves ORDER BY requested_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: list solves: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var requestedAt string
		if err := rows.Scan(&e.ID, &requestedAt, &e.Scramble, &e.Solution, &e.MoveCount, &e.DurationMs); err != nil {
			return nil, fmt.Errorf("history: scan solve: %w", err)
		}
		e.RequestedAt, _ = time.Parse(time.RFC3339Nano, requestedAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
