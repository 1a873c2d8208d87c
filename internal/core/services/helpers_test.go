package services

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// fakeProbe reports fixed installation states per dependency.
type fakeProbe struct {
	states map[domain.Dependency]domain.InstallationState
}

func (f *fakeProbe) State(dep domain.Dependency) (domain.InstallationState, error) {
	return f.states[dep], nil
}

func probeAt(backend, solver domain.InstallationState) *fakeProbe {
	return &fakeProbe{states: map[domain.Dependency]domain.InstallationState{
		domain.DependencyBackend: backend,
		domain.DependencySolver:  solver,
	}}
}

// fakeExecutor records every command it is asked to run. The respond
// hook scripts the result; without one every command succeeds silently.
type fakeExecutor struct {
	commands []driven.Command
	respond  func(cmd driven.Command) (driven.ExecResult, error)
}

func (f *fakeExecutor) Run(_ context.Context, cmd driven.Command) (driven.ExecResult, error) {
	f.commands = append(f.commands, cmd)
	if f.respond != nil {
		return f.respond(cmd)
	}
	return driven.ExecResult{}, nil
}

func (f *fakeExecutor) paths() []string {
	out := make([]string, len(f.commands))
	for i, c := range f.commands {
		out[i] = c.Path
	}
	return out
}
