package domain

// Dependency identifies one of the two external components the engine
// manages on disk.
type Dependency string

// Managed dependencies.
const (
	// DependencyBackend is the generic optimisation engine (SCIP) the
	// solver links against. It must be built before the solver.
	DependencyBackend Dependency = "backend"

	// DependencySolver is the structure-learning solver itself (GOBNILP).
	DependencySolver Dependency = "solver"
)

// String returns the string representation.
func (d Dependency) String() string {
	return string(d)
}

// InstallationState classifies how far a dependency has progressed
// through the unpack/build lifecycle. Transitions are monotonic; the
// state is never persisted explicitly but re-derived by probing the
// filesystem artefacts each time it is queried.
type InstallationState int

// Lifecycle states, in order.
const (
	// StateNotUnpacked means only the distribution archive exists.
	StateNotUnpacked InstallationState = iota

	// StateUnpacked means the source tree has been extracted but not compiled.
	StateUnpacked

	// StateBuilt means the compiled artefact exists. Terminal; it persists
	// across process restarts via the filesystem.
	StateBuilt
)

// String returns the string representation.
func (s InstallationState) String() string {
	switch s {
	case StateNotUnpacked:
		return "not unpacked"
	case StateUnpacked:
		return "unpacked"
	case StateBuilt:
		return "built"
	default:
		return "unknown"
	}
}

// BuildAction is a single lifecycle transition.
type BuildAction string

// Available build actions.
const (
	// ActionUnpack extracts the distribution archive.
	ActionUnpack BuildAction = "unpack"

	// ActionBuild compiles the extracted sources.
	ActionBuild BuildAction = "build"
)

// BuildStep is one pending transition for one dependency.
type BuildStep struct {
	Dependency Dependency
	Action     BuildAction
}

// Name returns the step label used in diagnostics, e.g. "backend build".
func (s BuildStep) Name() string {
	return string(s.Dependency) + " " + string(s.Action)
}

// PlanBuild is the pure transition planner: given the current state of
// both dependencies it returns only the missing steps, in the fixed
// order backend unpack, backend build, solver unpack, solver build.
// The backend must be built and linked before the solver compiles, so
// the order is not configurable. A fully built toolchain yields an
// empty plan.
func PlanBuild(backend, solver InstallationState) []BuildStep {
	var steps []BuildStep
	if backend < StateUnpacked {
		steps = append(steps, BuildStep{Dependency: DependencyBackend, Action: ActionUnpack})
	}
	if backend < StateBuilt {
		steps = append(steps, BuildStep{Dependency: DependencyBackend, Action: ActionBuild})
	}
	if solver < StateUnpacked {
		steps = append(steps, BuildStep{Dependency: DependencySolver, Action: ActionUnpack})
	}
	if solver < StateBuilt {
		steps = append(steps, BuildStep{Dependency: DependencySolver, Action: ActionBuild})
	}
	return steps
}
