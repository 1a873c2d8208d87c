package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

func TestInvokeRequiresBuiltSolver(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateUnpacked), exec)

	_, err := svc.Invoke(context.Background(), InvokeSpec{DataPath: "/tmp/data.dat"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotBuilt)
	assert.Empty(t, exec.commands)
}

func TestInvokeArguments(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateBuilt), exec)

	_, err := svc.Invoke(context.Background(), InvokeSpec{
		SettingsPath: "/tmp/gobnilp.set",
		DataPath:     "/tmp/data.dat",
	})
	require.NoError(t, err)

	require.Len(t, exec.commands, 1)
	assert.Equal(t, layout.SolverBinary(), exec.commands[0].Path)
	assert.Equal(t, []string{"-g=/tmp/gobnilp.set", "-f=dat", "/tmp/data.dat"}, exec.commands[0].Args)
}

func TestInvokeVerbosityFlag(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateBuilt), exec)

	_, err := svc.Invoke(context.Background(), InvokeSpec{
		SettingsPath: "/tmp/gobnilp.set",
		DataPath:     "/tmp/data.dat",
		Verbosity:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"-g=/tmp/gobnilp.set", "-f=dat", "-v=3", "/tmp/data.dat"}, exec.commands[0].Args)
}

func TestInvokeNonzeroExit(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{
		respond: func(driven.Command) (driven.ExecResult, error) {
			return driven.ExecResult{ExitCode: 1, Stderr: "cannot read data file"}, nil
		},
	}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateBuilt), exec)

	_, err := svc.Invoke(context.Background(), InvokeSpec{DataPath: "/tmp/data.dat"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSolverFailed)

	var solverErr *domain.SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, 1, solverErr.ExitCode)
	assert.Contains(t, solverErr.Stderr, "cannot read data file")
}

func TestInvokeStderrFallsBackToStdout(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{
		respond: func(driven.Command) (driven.ExecResult, error) {
			return driven.ExecResult{ExitCode: 1, Stdout: "ERROR: bad settings"}, nil
		},
	}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateBuilt), exec)

	_, err := svc.Invoke(context.Background(), InvokeSpec{DataPath: "/tmp/data.dat"})
	var solverErr *domain.SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, "ERROR: bad settings", solverErr.Stderr)
}

func TestInvokeForwardsEcho(t *testing.T) {
	layout := domain.NewToolchainLayout("/opt/gobn")
	exec := &fakeExecutor{}
	svc := NewSolverService(layout, probeAt(domain.StateBuilt, domain.StateBuilt), exec)

	var echo bytes.Buffer
	_, err := svc.Invoke(context.Background(), InvokeSpec{
		DataPath: "/tmp/data.dat",
		Echo:     &echo,
	})
	require.NoError(t, err)
	assert.Same(t, &echo, exec.commands[0].Echo)
}
