package driven

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// RunStore persists the learn-run history.
type RunStore interface {
	// Save appends a run record. Records are never updated in place.
	Save(ctx context.Context, rec domain.RunRecord) error

	// List returns the most recent runs, newest first. A non-positive
	// limit returns all records.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Get retrieves a run by ID. Returns domain.ErrNotFound when the
	// run does not exist.
	Get(ctx context.Context, id string) (domain.RunRecord, error)

	// Close releases underlying resources.
	Close() error
}
