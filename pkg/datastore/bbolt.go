package datastore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

var (
	ErrPathRequired     = errors.New("database path is required")
	ErrDatabaseReadOnly = errors.New("database is read-only")
)

// NewBBoltDB opens the content store at path, creating its directory when missing.
// timeout bounds the wait for the file lock held by another process.
func NewBBoltDB(path string, timeout time.Duration) (*bbolt.DB, error) {
	if path == "" {
		return nil, ErrPathRequired
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}

	db, err := bbolt.Open(path, 0o600, &bbolt.Options{
		Timeout: timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	if db.IsReadOnly() {
		if closeErr := db.Close(); closeErr != nil {
			return nil, errors.Join(ErrDatabaseReadOnly, closeErr)
		}
		return nil, ErrDatabaseReadOnly
	}

	return db, nil
}
