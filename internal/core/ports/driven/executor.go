package driven

import (
	"context"
	"io"
)

// Command describes one external process invocation.
type Command struct {
	// Path is the executable to run.
	Path string

	// Args are the command arguments, excluding the executable name.
	Args []string

	// Dir optionally changes the working directory for the command.
	// The solver's configure step must run from inside the solver tree.
	Dir string

	// Echo, when non-nil, receives combined output as it is produced,
	// in addition to the captured buffers. Used for verbose runs; with
	// a nil Echo output is buffered silently.
	Echo io.Writer
}

// ExecResult is the structured outcome of a finished command. A nonzero
// exit code is not an executor error: the caller decides what it means.
type ExecResult struct {
	// ExitCode is the process exit status.
	ExitCode int

	// Stdout is the captured standard output.
	Stdout string

	// Stderr is the captured error output.
	Stderr string
}

// Output returns the combined captured streams for diagnostics.
func (r ExecResult) Output() string {
	if r.Stderr == "" {
		return r.Stdout
	}
	if r.Stdout == "" {
		return r.Stderr
	}
	return r.Stdout + "\n" + r.Stderr
}

// CommandExecutor runs external commands to completion.
// Implementations block until the process terminates; cancellation is
// only via the context.
type CommandExecutor interface {
	// Run executes the command and returns its structured result.
	// The error is non-nil only when the process could not be started
	// or was interrupted; a nonzero exit is reported via ExitCode.
	Run(ctx context.Context, cmd Command) (ExecResult, error)
}
