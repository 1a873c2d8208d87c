package toolchain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

func TestStateNotUnpacked(t *testing.T) {
	layout := domain.NewToolchainLayout(t.TempDir())
	probe := NewFSProbe(layout)

	state, err := probe.State(domain.DependencySolver)
	require.NoError(t, err)
	assert.Equal(t, domain.StateNotUnpacked, state)

	state, err = probe.State(domain.DependencyBackend)
	require.NoError(t, err)
	assert.Equal(t, domain.StateNotUnpacked, state)
}

func TestStateUnpacked(t *testing.T) {
	layout := domain.NewToolchainLayout(t.TempDir())
	probe := NewFSProbe(layout)
	require.NoError(t, os.MkdirAll(layout.SolverDir(), 0o755))

	state, err := probe.State(domain.DependencySolver)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnpacked, state)
}

func TestStateBuilt(t *testing.T) {
	layout := domain.NewToolchainLayout(t.TempDir())
	probe := NewFSProbe(layout)

	binary := layout.SolverBinary()
	require.NoError(t, os.MkdirAll(filepath.Dir(binary), 0o755))
	require.NoError(t, os.WriteFile(binary, []byte("#!/bin/sh\n"), 0o755))

	state, err := probe.State(domain.DependencySolver)
	require.NoError(t, err)
	assert.Equal(t, domain.StateBuilt, state)
}

func TestStateBinaryMustBeAFile(t *testing.T) {
	layout := domain.NewToolchainLayout(t.TempDir())
	probe := NewFSProbe(layout)

	// A directory at the binary path counts as unpacked, not built.
	require.NoError(t, os.MkdirAll(layout.SolverBinary(), 0o755))

	state, err := probe.State(domain.DependencySolver)
	require.NoError(t, err)
	assert.Equal(t, domain.StateUnpacked, state)
}

func TestStateUnknownDependency(t *testing.T) {
	layout := domain.NewToolchainLayout(t.TempDir())
	probe := NewFSProbe(layout)

	_, err := probe.State(domain.Dependency("compiler"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
