// Package state persists build history in a SQLite database so repeated
// builds can report whether the site actually changed.
package state

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// BuildRecord is one row of build history.
type BuildRecord struct {
	ID           string
	Started      time.Time
	Duration     time.Duration
	Outcome      string
	Pages        int
	Assets       int
	Held         int
	Warnings     int
	ManifestHash string
}

// Store is a SQLite-backed build history.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the build history database. Use ":memory:" for
// an in-memory database in tests.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create state directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open build history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize build history schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		id TEXT PRIMARY KEY,
		started INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		outcome TEXT NOT NULL,
		pages INTEGER NOT NULL,
		assets INTEGER NOT NULL,
		held INTEGER NOT NULL,
		warnings INTEGER NOT NULL,
		manifest_hash TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_builds_started ON builds(started);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Record appends a build to the history.
func (s *Store) Record(ctx context.Context, rec BuildRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO builds (id, started, duration_ms, outcome, pages, assets, held, warnings, manifest_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Started.Unix(), rec.Duration.Milliseconds(), rec.Outcome,
		rec.Pages, rec.Assets, rec.Held, rec.Warnings, rec.ManifestHash,
	)
	if err != nil {
		return fmt.Errorf("insert build record: %w", err)
	}
	return nil
}

// Recent returns up to limit builds, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]BuildRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started, duration_ms, outcome, pages, assets, held, warnings, manifest_hash
		 FROM builds ORDER BY started DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query build history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []BuildRecord
	for rows.Next() {
		var rec BuildRecord
		var started int64
		var durationMS int64
		if err := rows.Scan(&rec.ID, &started, &durationMS, &rec.Outcome,
			&rec.Pages, &rec.Assets, &rec.Held, &rec.Warnings, &rec.ManifestHash); err != nil {
			return nil, fmt.Errorf("scan build record: %w", err)
		}
		rec.Started = time.Unix(started, 0).UTC()
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		out = append(out, rec)
	}
	return out, rows.Err()
}

// LastManifestHash returns the manifest hash of the most recent build, or
// empty when there is no history.
func (s *Store) LastManifestHash(ctx context.Context) (string, error) {
	var hash string
	err := s.db.QueryRowContext(ctx,
		`SELECT manifest_hash FROM builds ORDER BY started DESC, id DESC LIMIT 1`).Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("query last manifest hash: %w", err)
	}
	return hash, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }
