package services

import (
	"context"
	"fmt"
	"io"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// InvokeSpec names the files for one solver run. The constraints file
// is not passed on the command line: the settings file references it
// via the dagconstraintsfile parameter. It is carried here so the run
// can be logged completely.
type InvokeSpec struct {
	SettingsPath    string
	ConstraintsPath string
	DataPath        string

	// Verbosity is the solver's own output level (0-5). Zero means the
	// solver default.
	Verbosity int

	// Echo, when non-nil, receives solver output as it is produced.
	Echo io.Writer
}

// SolverService invokes the external solver binary as a subprocess.
// One deterministic run per call: no retries, no engine-side timeout.
// Termination is governed by the solver's own limits/time setting.
type SolverService struct {
	layout domain.ToolchainLayout
	probe  driven.ToolchainProbe
	exec   driven.CommandExecutor
}

// NewSolverService creates a solver service for the given layout.
func NewSolverService(layout domain.ToolchainLayout, probe driven.ToolchainProbe, exec driven.CommandExecutor) *SolverService {
	return &SolverService{
		layout: layout,
		probe:  probe,
		exec:   exec,
	}
}

// Invoke runs the solver against the prepared files and returns its
// structured result. Requires the solver to be BUILT. A nonzero exit
// yields a SolverError with the captured error text; the result parser
// must never be handed that run's output.
func (s *SolverService) Invoke(ctx context.Context, spec InvokeSpec) (driven.ExecResult, error) {
	state, err := s.probe.State(domain.DependencySolver)
	if err != nil {
		return driven.ExecResult{}, fmt.Errorf("probing solver state: %w", err)
	}
	if state != domain.StateBuilt {
		return driven.ExecResult{}, fmt.Errorf("%w: solver is %s", domain.ErrNotBuilt, state)
	}

	args := []string{"-g=" + spec.SettingsPath, "-f=dat"}
	if spec.Verbosity > 0 {
		args = append(args, fmt.Sprintf("-v=%d", spec.Verbosity))
	}
	args = append(args, spec.DataPath)

	logger.Info("invoking solver: %s %v", s.layout.SolverBinary(), args)
	logger.Debug("constraints file linked via settings: %s", spec.ConstraintsPath)

	res, err := s.exec.Run(ctx, driven.Command{
		Path: s.layout.SolverBinary(),
		Args: args,
		Echo: spec.Echo,
	})
	if err != nil {
		return res, fmt.Errorf("running solver: %w", err)
	}

	if res.ExitCode != 0 {
		stderr := res.Stderr
		if stderr == "" {
			stderr = res.Stdout
		}
		return res, &domain.SolverError{ExitCode: res.ExitCode, Stderr: stderr}
	}
	return res, nil
}
