// Package memory implements an in-memory record store for tests.
package memory

import (
	"context"
	"sync"

	"repaircore/pkg/domain"
)

// Store collects inserted records per table. Safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	tables map[string][]domain.Record
}

// New returns an empty in-memory record store.
func New() *Store { return &Store{tables: make(map[string][]domain.Record)} }

// Insert appends the record to its table.
func (s *Store) Insert(_ context.Context, rec domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[rec.Table()] = append(s.tables[rec.Table()], rec)
	return nil
}

// Records returns the inserted records of one table.
func (s *Store) Records(table string) []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.tables[table]))
	copy(out, s.tables[table])
	return out
}

// Count returns the total number of inserted records.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, recs := range s.tables {
		total += len(recs)
	}
	return total
}

// Tables returns the names of tables that received at least one record.
func (s *Store) Tables() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	return names
}
