package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driving"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// Ensure InstallService implements the interface.
var _ driving.Installer = (*InstallService)(nil)

// InstallService sequences the toolchain's unpack and build steps.
// State is derived by probing, so a previously built toolchain is
// recognised without any stored bookkeeping.
type InstallService struct {
	layout domain.ToolchainLayout
	probe  driven.ToolchainProbe
	exec   driven.CommandExecutor
	echo   io.Writer
}

// InstallOption configures the InstallService.
type InstallOption func(*InstallService)

// WithBuildOutput forwards build tool output to w as it is produced.
// Without it, output is captured silently and surfaced only on failure.
func WithBuildOutput(w io.Writer) InstallOption {
	return func(s *InstallService) {
		s.echo = w
	}
}

// NewInstallService creates an install service for the given layout.
func NewInstallService(layout domain.ToolchainLayout, probe driven.ToolchainProbe, exec driven.CommandExecutor, opts ...InstallOption) *InstallService {
	s := &InstallService{
		layout: layout,
		probe:  probe,
		exec:   exec,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EnsureBuilt issues only the transitions still missing, in the fixed
// order backend unpack, backend build, solver unpack, solver build.
// Already satisfied steps are skipped; a fully built toolchain returns
// immediately. The first failing step halts the sequence with a
// BuildError carrying its diagnostic output; nothing is rolled back.
func (s *InstallService) EnsureBuilt(ctx context.Context) error {
	backend, err := s.probe.State(domain.DependencyBackend)
	if err != nil {
		return fmt.Errorf("probing backend state: %w", err)
	}
	solver, err := s.probe.State(domain.DependencySolver)
	if err != nil {
		return fmt.Errorf("probing solver state: %w", err)
	}

	steps := domain.PlanBuild(backend, solver)
	if len(steps) == 0 {
		logger.Debug("toolchain already built, nothing to do")
		return nil
	}

	logger.Info("toolchain needs %d step(s): backend %s, solver %s", len(steps), backend, solver)

	for _, step := range steps {
		logger.Section(step.Name())
		if err := s.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

// Status reports the derived state of both dependencies.
func (s *InstallService) Status(_ context.Context) (map[domain.Dependency]domain.InstallationState, error) {
	states := make(map[domain.Dependency]domain.InstallationState, 2)
	for _, dep := range []domain.Dependency{domain.DependencyBackend, domain.DependencySolver} {
		state, err := s.probe.State(dep)
		if err != nil {
			return nil, fmt.Errorf("probing %s state: %w", dep, err)
		}
		states[dep] = state
	}
	return states, nil
}

// Clean removes the extracted solver and backend trees. The archives
// stay in place, so a later EnsureBuilt starts from NOT_UNPACKED.
func (s *InstallService) Clean(ctx context.Context) error {
	for _, dir := range []string{s.layout.SolverDir(), s.layout.BackendDir()} {
		logger.Debug("removing %s", dir)
		res, err := s.exec.Run(ctx, driven.Command{Path: "rm", Args: []string{"-rf", dir}})
		if err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
		if res.ExitCode != 0 {
			return fmt.Errorf("removing %s: %s", dir, res.Stderr)
		}
	}
	return nil
}

// runStep executes one lifecycle transition.
func (s *InstallService) runStep(ctx context.Context, step domain.BuildStep) error {
	switch {
	case step.Dependency == domain.DependencyBackend && step.Action == domain.ActionUnpack:
		// The backend tarball carries its own top-level directory.
		return s.runCommand(ctx, step, driven.Command{
			Path: "tar",
			Args: []string{"-xzf", s.layout.BackendArchive(), "-C", s.layout.Root},
		})

	case step.Dependency == domain.DependencyBackend && step.Action == domain.ActionBuild:
		return s.runCommand(ctx, step, driven.Command{
			Path: "make",
			Args: []string{"-C", s.layout.BackendDir()},
		})

	case step.Dependency == domain.DependencySolver && step.Action == domain.ActionUnpack:
		// The solver tarball unpacks into the current directory, so a
		// directory is created for it first.
		if err := s.runCommand(ctx, step, driven.Command{
			Path: "mkdir",
			Args: []string{"-p", s.layout.SolverDir()},
		}); err != nil {
			return err
		}
		return s.runCommand(ctx, step, driven.Command{
			Path: "tar",
			Args: []string{"-xzf", s.layout.SolverArchive(), "-C", s.layout.SolverDir()},
		})

	case step.Dependency == domain.DependencySolver && step.Action == domain.ActionBuild:
		return s.linkAndMakeSolver(ctx, step)

	default:
		return fmt.Errorf("unknown build step %s", step.Name())
	}
}

// linkAndMakeSolver links the built backend into the solver tree, then
// compiles the solver. The configure script must run from inside the
// solver directory.
func (s *InstallService) linkAndMakeSolver(ctx context.Context, step domain.BuildStep) error {
	res, err := s.exec.Run(ctx, driven.Command{
		Path: "./configure.sh",
		Args: []string{s.layout.BackendCoreDir()},
		Dir:  s.layout.SolverDir(),
		Echo: s.echo,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", step.Name(), err)
	}
	// The configure script exits nonzero when the link already exists;
	// that is not a failure.
	if res.ExitCode != 0 && !strings.Contains(res.Output(), "exists") {
		return &domain.BuildError{Step: step.Name(), Output: res.Output()}
	}

	return s.runCommand(ctx, step, driven.Command{
		Path: "make",
		Args: []string{"-C", s.layout.SolverDir()},
	})
}

// runCommand runs one command for a step, converting a nonzero exit
// into a BuildError carrying the captured diagnostics.
func (s *InstallService) runCommand(ctx context.Context, step domain.BuildStep, cmd driven.Command) error {
	cmd.Echo = s.echo
	res, err := s.exec.Run(ctx, cmd)
	if err != nil {
		return fmt.Errorf("%s: %w", step.Name(), err)
	}
	if res.ExitCode != 0 {
		return &domain.BuildError{Step: step.Name(), Output: res.Output()}
	}
	return nil
}
