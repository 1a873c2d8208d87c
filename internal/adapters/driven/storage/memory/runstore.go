package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// RunStore is a thread-safe in-memory run history used as a test double
// for the sqlite-backed store. Records are kept in insertion order.
type RunStore struct {
	mu      sync.RWMutex
	records []domain.RunRecord
}

var _ driven.RunStore = (*RunStore)(nil)

// NewRunStore returns an empty in-memory run store.
func NewRunStore() *RunStore {
	return &RunStore{}
}

// Save appends the record to the history.
func (s *RunStore) Save(_ context.Context, rec domain.RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns everything.
func (s *RunStore) List(_ context.Context, limit int) ([]domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.RunRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, s.records[i])
	}
	return out, nil
}

// Get returns the record with the given ID.
func (s *RunStore) Get(_ context.Context, id string) (domain.RunRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.RunRecord{}, fmt.Errorf("run %q: %w", id, domain.ErrNotFound)
}

// Close is a no-op for the in-memory store.
func (s *RunStore) Close() error { return nil }
