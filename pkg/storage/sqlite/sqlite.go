// Package sqlite implements a storage sink backed by a single-table
// SQLite database.
package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/cinetech/cinetech/pkg/constants"
	"github.com/cinetech/cinetech/pkg/errors"
	"github.com/cinetech/cinetech/pkg/storage"
)

// Sink stores keys in a kv table of a SQLite database file.
type Sink struct {
	db   *sql.DB
	path string
}

var _ storage.Sink = (*Sink)(nil)

// Open initializes or connects to the database at path.
func Open(path string) (*Sink, error) {
	if path == "" {
		return nil, errors.New("database path required")
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, errors.WrapIO("configure", path, execErr)
		}
	}

	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS kv (
            key   TEXT PRIMARY KEY,
            value BLOB NOT NULL
        )`,
	); err != nil {
		_ = db.Close()
		return nil, errors.WrapIO("migrate", path, err)
	}

	return &Sink{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Sink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Save upserts value under key.
func (s *Sink) Save(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
         ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return errors.WrapIO("write", s.path, err)
	}
	return nil
}

// Load returns the value stored under key; missing rows report ok=false.
func (s *Sink) Load(key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WrapIO("read", s.path, err)
	}
	return value, true, nil
}
