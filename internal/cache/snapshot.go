// Package cache stores a local snapshot of the catalogue so directory reads
// can fall back when the primary store is unreachable.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/octobees/staff-directory/internal/entity"
)

// ErrNoSnapshot indicates that no snapshot has been saved yet.
var ErrNoSnapshot = errors.New("no catalogue snapshot available")

// Snapshot is a single-row sqlite store holding the last known catalogue.
type Snapshot struct {
	db *sql.DB
}

// Open creates or opens the snapshot database at path.
func Open(path string) (*Snapshot, error) {
	if path == "" {
		return nil, fmt.Errorf("snapshot path must not be empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot db: %w", err)
	}

	_, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS catalogue_snapshot (
            id INTEGER PRIMARY KEY CHECK (id = 1),
            payload TEXT NOT NULL,
            saved_at TIMESTAMP NOT NULL
        )
    `)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create snapshot table: %w", err)
	}

	return &Snapshot{db: db}, nil
}

// Save replaces the stored snapshot with the given catalogue.
func (s *Snapshot) Save(ctx context.Context, companies []entity.Company) error {
	if companies == nil {
		companies = []entity.Company{}
	}
	payload, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO catalogue_snapshot (id, payload, saved_at) VALUES (1, ?, ?)
        ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, saved_at = excluded.saved_at
    `, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load returns the stored catalogue and when it was saved.
func (s *Snapshot) Load(ctx context.Context) ([]entity.Company, time.Time, error) {
	var (
		payload string
		savedAt time.Time
	)
	err := s.db.QueryRowContext(ctx, `SELECT payload, saved_at FROM catalogue_snapshot WHERE id = 1`).Scan(&payload, &savedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, time.Time{}, ErrNoSnapshot
		}
		return nil, time.Time{}, fmt.Errorf("load snapshot: %w", err)
	}

	var companies []entity.Company
	if err := json.Unmarshal([]byte(payload), &companies); err != nil {
		return nil, time.Time{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return companies, savedAt, nil
}

// Close releases the underlying database handle.
func (s *Snapshot) Close() error {
	return s.db.Close()
}
