// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const createBuckets = `CREATE TABLE IF NOT EXISTS buckets (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

type sqliteBackend struct {
	db *sql.DB
}

// OpenSQLite opens a SQLite database at path, creating it when missing.
func OpenSQLite(ctx context.Context, path string) (Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, createBuckets); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialise %s: %w", path, err)
	}

	s, err := newBucketStore(ctx, &sqliteBackend{db: db})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (b *sqliteBackend) read(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM buckets WHERE key=?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(value), true, nil
}

func (b *sqliteBackend) write(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO buckets(key, value) VALUES(?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, string(value))
	return err
}

func (b *sqliteBackend) close() error {
	return b.db.Close()
}
