// Package postgres provides a Postgres-backed record store that applies the
// schema DDL on startup.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver

	"repaircore/internal/infra/persistence"
	"repaircore/pkg/domain"
)

const (
	driverName = "pgx"
	defaultDSN = "postgres://localhost/repaircore?sslmode=disable"
)

// Store writes records to Postgres. Safe for concurrent inserts; the pool is
// managed by database/sql.
type Store struct {
	db *sql.DB
}

// Open connects using the provided DSN (falls back to a local default),
// verifies the connection, and creates any missing tables.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		dsn = defaultDSN
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
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
	query := persistence.InsertSQL(table, columns, persistence.Dollar)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// DB exposes the underlying pool for integration testing hooks.
func (s *Store) DB() *sql.DB { return s.db }

// Close releases the connection pool.
func (s *Store) Close() error { return s.db.Close() }
