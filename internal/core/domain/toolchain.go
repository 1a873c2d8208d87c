package domain

import "path/filepath"

// Distribution versions bundled by default. Overridable per layout for
// user-supplied toolchains.
const (
	// DefaultSolverVersion is the bundled GOBNILP release.
	DefaultSolverVersion = "1.6.1"

	// DefaultBackendVersion is the bundled SCIP Optimization Suite release.
	DefaultBackendVersion = "3.1.1"
)

// ToolchainLayout resolves every filesystem location of the solver
// distribution from a root directory and two version strings. It is a
// pure lookup with no side effects; probing whether the resolved paths
// exist is an adapter concern.
type ToolchainLayout struct {
	// Root is the directory holding the distribution archives and the
	// extracted source trees.
	Root string

	// SolverVersion selects the solver release, e.g. "1.6.1".
	SolverVersion string

	// BackendVersion selects the backend release, e.g. "3.1.1".
	BackendVersion string
}

// NewToolchainLayout creates a layout rooted at dir with the bundled
// default versions.
func NewToolchainLayout(dir string) ToolchainLayout {
	return ToolchainLayout{
		Root:           dir,
		SolverVersion:  DefaultSolverVersion,
		BackendVersion: DefaultBackendVersion,
	}
}

// SolverArchive returns the path of the solver distribution tarball.
func (l ToolchainLayout) SolverArchive() string {
	return filepath.Join(l.Root, "gobnilp"+l.SolverVersion+".tar.gz")
}

// SolverDir returns the directory the solver archive extracts into.
// The solver tarball unpacks into the current directory, so extraction
// targets a directory created for it.
func (l ToolchainLayout) SolverDir() string {
	return filepath.Join(l.Root, "gobnilp"+l.SolverVersion)
}

// SolverBinary returns the path of the compiled solver executable.
// Its presence is the probe for the solver's BUILT state.
func (l ToolchainLayout) SolverBinary() string {
	return filepath.Join(l.SolverDir(), "bin", "gobnilp")
}

// BackendArchive returns the path of the backend suite tarball.
func (l ToolchainLayout) BackendArchive() string {
	return filepath.Join(l.Root, "scipoptsuite-"+l.BackendVersion+".tgz")
}

// BackendDir returns the directory the backend suite extracts into.
// Unlike the solver, the backend tarball carries its own top directory.
func (l ToolchainLayout) BackendDir() string {
	return filepath.Join(l.Root, "scipoptsuite-"+l.BackendVersion)
}

// BackendCoreDir returns the backend's inner source directory, which
// the solver's configure step links against.
func (l ToolchainLayout) BackendCoreDir() string {
	return filepath.Join(l.BackendDir(), "scip-"+l.BackendVersion)
}

// BackendBinary returns the path of the compiled backend executable.
// Its presence is the probe for the backend's BUILT state.
func (l ToolchainLayout) BackendBinary() string {
	return filepath.Join(l.BackendCoreDir(), "bin", "scip")
}
