// Package player persists the playback snapshot: which episode was playing
// and how far in. The core extraction/search packages never touch it; only
// the binaries wire it, so a fresh fetch-and-search works without a store.
package player

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Snapshot records where playback stopped.
type Snapshot struct {
	EpisodeID string
	Position  float64 // seconds into the episode
}

// Store persists a single playback snapshot across sessions, backed by a
// local SQLite file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the snapshot store at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("store path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db}
	if err := s.init(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "PRAGMA busy_timeout = 5000;"); err != nil {
		return fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS playback (
		slot INTEGER PRIMARY KEY CHECK (slot = 1),
		episode_id TEXT NOT NULL,
		position REAL NOT NULL
	);`); err != nil {
		return fmt.Errorf("create playback table: %w", err)
	}
	return nil
}

// Save upserts the snapshot; there is only ever one row.
func (s *Store) Save(ctx context.Context, snap Snapshot) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO playback (slot, episode_id, position) VALUES (1, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET episode_id = excluded.episode_id, position = excluded.position`,
		snap.EpisodeID, snap.Position)
	if err != nil {
		return fmt.Errorf("save playback snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot; ok is false when nothing was saved yet.
func (s *Store) Load(ctx context.Context) (snap Snapshot, ok bool, err error) {
	err = s.db.QueryRowContext(ctx, `SELECT episode_id, position FROM playback WHERE slot = 1`).
		Scan(&snap.EpisodeID, &snap.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("load playback snapshot: %w", err)
	}
	return snap, true, nil
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
