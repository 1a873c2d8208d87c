package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBuildFailed indicates a toolchain unpack or compile step failed.
	ErrBuildFailed = errors.New("toolchain build failed")

	// ErrNotBuilt indicates the solver binary is not available.
	// The solver must be unpacked and built before it can be invoked.
	ErrNotBuilt = errors.New("solver not built")

	// ErrMalformedConstraint indicates a structural requirement violates
	// the constraint grammar (for example an empty variable name).
	ErrMalformedConstraint = errors.New("malformed constraint")

	// ErrMalformedData indicates tabular input violates shape invariants
	// (ragged rows, zero rows, or an empty variable set).
	ErrMalformedData = errors.New("malformed data")

	// ErrSolverFailed indicates the solver subprocess exited nonzero.
	ErrSolverFailed = errors.New("solver run failed")

	// ErrUnparsableResult indicates solver output lacks the expected
	// structure report. Distinct from a network with zero arcs.
	ErrUnparsableResult = errors.New("unparsable solver result")
)

// BuildError reports a failed toolchain step with its diagnostic output.
type BuildError struct {
	// Step names the failing step, e.g. "backend build".
	Step string

	// Output is the captured diagnostic text from the failing command.
	Output string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("toolchain build failed at %s", e.Step)
}

// Unwrap allows errors.Is(err, ErrBuildFailed) checks.
func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}

// SolverError reports a nonzero solver exit with captured stderr.
type SolverError struct {
	// ExitCode is the solver process exit status.
	ExitCode int

	// Stderr is the captured error-stream text, surfaced verbatim.
	Stderr string
}

// Error implements the error interface.
func (e *SolverError) Error() string {
	return fmt.Sprintf("solver run failed with exit code %d", e.ExitCode)
}

// Unwrap allows errors.Is(err, ErrSolverFailed) checks.
func (e *SolverError) Unwrap() error {
	return ErrSolverFailed
}

// MalformedConstraintError reports a constraint that cannot be compiled.
// No constraint file is written when compilation fails.
type MalformedConstraintError struct {
	// Reason describes the offending constraint.
	Reason string
}

// Error implements the error interface.
func (e *MalformedConstraintError) Error() string {
	return "malformed constraint: " + e.Reason
}

// Unwrap allows errors.Is(err, ErrMalformedConstraint) checks.
func (e *MalformedConstraintError) Unwrap() error {
	return ErrMalformedConstraint
}

// MalformedDataError reports tabular input that cannot be normalised.
type MalformedDataError struct {
	// Reason describes the shape violation.
	Reason string
}

// Error implements the error interface.
func (e *MalformedDataError) Error() string {
	return "malformed data: " + e.Reason
}

// Unwrap allows errors.Is(err, ErrMalformedData) checks.
func (e *MalformedDataError) Unwrap() error {
	return ErrMalformedData
}

// UnparsableResultError reports solver output missing the structure report.
type UnparsableResultError struct {
	// Reason describes what was missing or rejected.
	Reason string
}

// Error implements the error interface.
func (e *UnparsableResultError) Error() string {
	return "unparsable solver result: " + e.Reason
}

// Unwrap allows errors.Is(err, ErrUnparsableResult) checks.
func (e *UnparsableResultError) Unwrap() error {
	return ErrUnparsableResult
}
