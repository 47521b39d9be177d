// Package storage provides a SQLite-backed run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is discarded when the store is closed.
package storage

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/dxball/internal/game"
)

// memoryDSN opens a private in-memory database. Every connection to it sees
// a different database, so the pool is pinned to one connection.
const memoryDSN = ":memory:"

// Store keeps completed runs in an in-memory SQLite database.
// It implements game.History and is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Stats summarizes every recorded run.
type Stats struct {
	Runs      int
	BestScore int
	TotalTime float64 // Seconds
	AvgScore  float64
}

// Open creates an empty in-memory store and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			play_time REAL NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_rank ON runs(score DESC, play_time ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection, discarding all runs.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Append records a completed run.
func (s *Store) Append(run game.Run) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (score, play_time) VALUES (?, ?)",
		run.Score, run.Time,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save run: %w", err)
	}
	return nil
}

// Runs returns every run in insertion order.
func (s *Store) Runs() ([]game.Run, error) {
	return s.query("SELECT score, play_time FROM runs ORDER BY id ASC")
}

// TopRuns returns up to limit runs, best first: higher score, then shorter
// time, then earlier insertion.
func (s *Store) TopRuns(limit int) ([]game.Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		"SELECT score, play_time FROM runs ORDER BY score DESC, play_time ASC, id ASC LIMIT ?",
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]game.Run, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []game.Run
	for rows.Next() {
		var r game.Run
		if err := rows.Scan(&r.Score, &r.Time); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating runs: %w", err)
	}

	return runs, nil
}

// Best returns the top-ranked run. The second result is false when no runs
// have been recorded.
func (s *Store) Best() (game.Run, bool, error) {
	runs, err := s.TopRuns(1)
	if err != nil {
		return game.Run{}, false, err
	}
	if len(runs) == 0 {
		return game.Run{}, false, nil
	}
	return runs[0], true, nil
}

// Stats returns aggregate statistics over all runs.
func (s *Store) Stats() (Stats, error) {
	var st Stats
	err := s.db.QueryRow(`
		SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(SUM(play_time), 0), COALESCE(AVG(score), 0)
		FROM runs
	`).Scan(&st.Runs, &st.BestScore, &st.TotalTime, &st.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	return st, nil
}

// Clear removes every run.
func (s *Store) Clear() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// compile-time check
var _ game.History = (*Store)(nil)
