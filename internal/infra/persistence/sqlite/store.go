// Package sqlite provides a file-backed record store using the pure-Go
// sqlite driver. Tables are created on open.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // register the pure-Go sqlite driver

	"repaircore/internal/infra/persistence"
	"repaircore/pkg/domain"
)

const (
	driverName  = "sqlite"
	defaultPath = "./repaircore.db"
)

// Store writes records to a sqlite database file.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
// An empty path defaults to ./repaircore.db; use ":memory:" for tests.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		path = defaultPath
	}
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// The driver opens one connection per file handle; sqlite serializes
	// writers, so cap the pool to avoid SQLITE_BUSY under concurrent inserts.
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range persistence.Schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Insert writes one record.
func (s *Store) Insert(ctx context.Context, rec domain.Record) error {
	table, columns, args, err := persistence.BindRecord(rec)
	if err != nil {
		return err
	}
	query := persistence.InsertSQL(table, columns, persistence.Question)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }
