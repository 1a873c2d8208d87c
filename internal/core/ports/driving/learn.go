package driving

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// LearnRequest carries one structure-learning run's inputs. Settings and
// Constraints are optional: nil leaves the engine's current values in place.
type LearnRequest struct {
	// Data is the observation data in one of the accepted shapes.
	Data domain.DataInput

	// Settings, when non-nil, is merged onto the engine's settings
	// before the run, exactly as SetSettings would.
	Settings domain.Settings

	// Constraints, when non-nil, replaces the active constraint set
	// wholesale, exactly as SetConstraints would.
	Constraints *domain.ConstraintSet
}

// Learner is the orchestration engine's public surface: it drives the
// full normalise -> persist -> invoke -> parse pipeline.
type Learner interface {
	// Learn runs the solver against the given data and returns the
	// learned network. Stages run strictly in sequence; any failure
	// aborts the call with no partially written files observable.
	Learn(ctx context.Context, req LearnRequest) (*domain.LearnedNetwork, error)

	// SetSettings merges parameter overrides onto the engine's current
	// settings and returns the override keys unknown to the baseline.
	// Unknown keys are preserved, never dropped.
	SetSettings(overrides domain.Settings) []string

	// SetConstraints replaces the active constraint set wholesale.
	// Returns a malformed-constraint error without changing the active
	// set when validation fails.
	SetConstraints(set domain.ConstraintSet) error

	// Settings returns a copy of the engine's current settings.
	Settings() domain.Settings

	// Constraints returns the active constraint set.
	Constraints() domain.ConstraintSet
}
