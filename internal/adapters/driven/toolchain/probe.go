// Package toolchain inspects the filesystem to determine how far each
// solver dependency has progressed towards a working build. The state is
// always derived from what is actually on disk, never cached.
package toolchain

import (
	"fmt"
	"os"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// FSProbe implements driven.ToolchainProbe by checking for the unpacked
// source tree and the compiled binary of each dependency.
type FSProbe struct {
	layout domain.ToolchainLayout
}

var _ driven.ToolchainProbe = (*FSProbe)(nil)

// NewFSProbe returns a probe for the given toolchain layout.
func NewFSProbe(layout domain.ToolchainLayout) *FSProbe {
	return &FSProbe{layout: layout}
}

// State reports the installation state of the dependency. A present
// binary means built, a present source directory means unpacked, and
// anything else means not unpacked.
func (p *FSProbe) State(dep domain.Dependency) (domain.InstallationState, error) {
	var dir, binary string
	switch dep {
	case domain.DependencyBackend:
		dir = p.layout.BackendDir()
		binary = p.layout.BackendBinary()
	case domain.DependencySolver:
		dir = p.layout.SolverDir()
		binary = p.layout.SolverBinary()
	default:
		return domain.StateNotUnpacked, fmt.Errorf("unknown dependency %q: %w", dep, domain.ErrInvalidInput)
	}

	if fileExists(binary) {
		return domain.StateBuilt, nil
	}
	if dirExists(dir) {
		return domain.StateUnpacked, nil
	}
	return domain.StateNotUnpacked, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
