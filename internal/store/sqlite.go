package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rahul27tatar/GreenThumbAI-v-1.9/internal/types"
)

const schemaVersion = 1

// SQLiteStore keeps the garden in an embedded SQLite database. Each record
// is stored as its JSON encoding under the plant id, so the table behaves
// as a durable key-value collection rather than a relational schema.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) the database file. The schema itself is
// created by Init.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	// database/sql pooling and SQLite writers do not mix well.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

// Init creates the plants collection if it does not exist and stamps the
// schema version. Safe to call more than once.
func (s *SQLiteStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS plants (
	id         TEXT PRIMARY KEY,
	record     TEXT NOT NULL,
	date_added INTEGER NOT NULL
);`)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, err = s.db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// ListAll returns every saved plant in storage order.
func (s *SQLiteStore) ListAll(ctx context.Context) ([]types.SavedPlant, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM plants`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	defer rows.Close()

	var plants []types.SavedPlant
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
		}
		var p types.SavedPlant
		if err := json.Unmarshal([]byte(record), &p); err != nil {
			return nil, fmt.Errorf("%w: corrupt record: %v", ErrReadFailed, err)
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}
	return plants, nil
}

// Put inserts or replaces the record keyed by plant.ID.
func (s *SQLiteStore) Put(ctx context.Context, plant types.SavedPlant) error {
	record, err := json.Marshal(plant)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO plants (id, record, date_added) VALUES (?, ?, ?)
ON CONFLICT(id) DO UPDATE SET record = excluded.record, date_added = excluded.date_added`,
		plant.ID, string(record), plant.DateAdded)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

// Delete removes the record with the given id. Deleting an id that is not
// present is a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM plants WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
