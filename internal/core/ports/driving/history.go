package driving

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// History exposes the recorded learn runs.
type History interface {
	// List returns the most recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Get retrieves a single run by ID.
	Get(ctx context.Context, id string) (domain.RunRecord, error)
}
