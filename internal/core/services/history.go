package services

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.History = (*HistoryService)(nil)

// HistoryService exposes recorded learn runs.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a history service over the run store.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// List returns the most recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	return s.runs.List(ctx, limit)
}

// Get retrieves a single run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (domain.RunRecord, error) {
	return s.runs.Get(ctx, id)
}
