// Package domain defines the core business entities for gobn.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Settings: solver parameter overrides merged onto defaults
//   - ConstraintSet: structural requirements compiled to the solver grammar
//   - DataTable / Matrix: tabular observation data awaiting normalisation
//   - ToolchainLayout: pure path resolution for the solver distribution
//   - InstallationState: derived unpack/build lifecycle per dependency
//   - LearnedNetwork: the directed graph recovered from solver output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
