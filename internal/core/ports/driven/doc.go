// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the engine to function:
//
//   - CommandExecutor: Runs external commands (tar, make, the solver binary)
//   - ToolchainProbe: Derives installation state from filesystem artefacts
//   - DataNormaliser: Converts one tabular input shape to the canonical data file
//   - NormaliserRegistry: Selects the normaliser for an input shape
//   - ConfigStore: Engine configuration
//
// # Optional Interfaces
//
// These can be nil - the engine degrades gracefully:
//
//   - RunStore: Learn-run history persistence. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
