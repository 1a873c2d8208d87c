package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// Ensure LearnEngine implements the interface.
var _ driving.Learner = (*LearnEngine)(nil)

// LearnEngine orchestrates a full structure-learning run: normalise the
// data, persist settings and constraints, invoke the solver, parse its
// report. The engine owns its settings, constraints and data files
// exclusively and overwrites them on every run; two engines sharing a
// work directory is unsafe and must be avoided by the caller.
//
// All stages run strictly in sequence on the calling goroutine. The
// solver subprocess may thread internally, but the engine observes it
// only as a blocking call.
type LearnEngine struct {
	settings    *SettingsService
	constraints *ConstraintService
	data        *DataService
	solver      *SolverService
	runs        driven.RunStore
	verbosity   int
	echo        io.Writer
}

// EngineOption configures the LearnEngine.
type EngineOption func(*LearnEngine)

// WithRunStore records every learn run in the given store.
func WithRunStore(rs driven.RunStore) EngineOption {
	return func(e *LearnEngine) {
		e.runs = rs
	}
}

// WithSolverVerbosity forwards the solver's -v level (0-5).
func WithSolverVerbosity(level int) EngineOption {
	return func(e *LearnEngine) {
		e.verbosity = level
	}
}

// WithSolverOutput streams solver output to w during the run.
func WithSolverOutput(w io.Writer) EngineOption {
	return func(e *LearnEngine) {
		e.echo = w
	}
}

// NewLearnEngine assembles the orchestration engine from its services.
func NewLearnEngine(settings *SettingsService, constraints *ConstraintService, data *DataService, solver *SolverService, opts ...EngineOption) *LearnEngine {
	e := &LearnEngine{
		settings:    settings,
		constraints: constraints,
		data:        data,
		solver:      solver,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetSettings merges overrides onto the engine's current settings.
func (e *LearnEngine) SetSettings(overrides domain.Settings) []string {
	return e.settings.Set(overrides)
}

// SetConstraints replaces the active constraint set wholesale.
func (e *LearnEngine) SetConstraints(set domain.ConstraintSet) error {
	return e.constraints.Set(set)
}

// Settings returns a copy of the engine's current settings.
func (e *LearnEngine) Settings() domain.Settings {
	return e.settings.Current()
}

// Constraints returns the active constraint set.
func (e *LearnEngine) Constraints() domain.ConstraintSet {
	return e.constraints.Current()
}

// Learn runs the pipeline end to end and returns the learned network.
// Any stage failure aborts the call; file writes are atomic, so no
// partially written settings, constraints or data file is ever left
// observable. Nothing is retried.
func (e *LearnEngine) Learn(ctx context.Context, req driving.LearnRequest) (*domain.LearnedNetwork, error) {
	if req.Data == nil {
		return nil, fmt.Errorf("%w: learn request has no data", domain.ErrInvalidInput)
	}

	if req.Settings != nil {
		e.settings.Set(req.Settings)
	}
	if req.Constraints != nil {
		if err := e.constraints.Set(*req.Constraints); err != nil {
			return nil, err
		}
	}

	norm, err := e.data.Normalise(ctx, req.Data)
	if err != nil {
		return nil, err
	}

	// Point the solver at this run's files. The constraints file rides
	// inside the settings file, not on the command line.
	e.settings.Set(domain.Settings{
		domain.SettingConstraintsFile: domain.String(e.constraints.Path()),
		domain.SettingNames:           domain.String(boolWord(norm.HasHeader)),
		domain.SettingDelimiter:       domain.String(delimiterWord(e.data.Delimiter())),
	})

	if err := e.constraints.Persist(); err != nil {
		return nil, err
	}
	if err := e.settings.Persist(); err != nil {
		return nil, err
	}

	started := time.Now()
	res, err := e.solver.Invoke(ctx, InvokeSpec{
		SettingsPath:    e.settings.Path(),
		ConstraintsPath: e.constraints.Path(),
		DataPath:        norm.Path,
		Verbosity:       e.verbosity,
		Echo:            e.echo,
	})
	finished := time.Now()

	rec := domain.RunRecord{
		ID:         uuid.New().String(),
		StartedAt:  started,
		FinishedAt: finished,
		DataPath:   norm.Path,
		Variables:  len(norm.Variables),
		ExitCode:   res.ExitCode,
	}

	if err != nil {
		rec.Failure = err.Error()
		e.record(ctx, rec)
		return nil, err
	}

	network, err := ParseResult(res.Stdout, norm.Variables)
	if err != nil {
		rec.Failure = err.Error()
		e.record(ctx, rec)
		return nil, err
	}

	rec.Succeeded = true
	rec.Score = network.Score
	rec.Arcs = len(network.Arcs)
	e.record(ctx, rec)

	logger.Info("learned network: %d variable(s), %d arc(s), score %g",
		len(network.Variables), len(network.Arcs), network.Score)
	return network, nil
}

// record appends the run to the history store when one is configured.
// History is best effort; a store failure never fails the run.
func (e *LearnEngine) record(ctx context.Context, rec domain.RunRecord) {
	if e.runs == nil {
		return
	}
	if err := e.runs.Save(ctx, rec); err != nil {
		logger.Warn("recording run %s: %v", rec.ID, err)
	}
}

// boolWord renders a boolean in the solver's settings vocabulary.
func boolWord(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

// delimiterWord maps the engine delimiter to the solver's setting value.
// The solver spells the default single-space delimiter "whitespace".
func delimiterWord(delim string) string {
	if delim == "" || delim == " " {
		return "whitespace"
	}
	return delim
}
