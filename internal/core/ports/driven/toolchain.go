package driven

import "github.com/lattice-labs/gobn-cli/internal/core/domain"

// ToolchainProbe derives the installation state of a dependency.
// State is never stored explicitly; implementations classify it from
// filesystem artefacts (extracted directory, built executable) so that
// BUILT persists across process restarts for free.
type ToolchainProbe interface {
	// State classifies how far the dependency has progressed through
	// the unpack/build lifecycle.
	State(dep domain.Dependency) (domain.InstallationState, error)
}
