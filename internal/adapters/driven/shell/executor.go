// Package shell runs external commands via os/exec, capturing their
// combined output while optionally echoing it to a writer.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// Executor implements driven.CommandExecutor on top of os/exec.
type Executor struct{}

var _ driven.CommandExecutor = (*Executor)(nil)

// NewExecutor returns a ready-to-use executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Run executes the command and returns its captured output. A nonzero
// exit status is reported through ExecResult.ExitCode, not as an error;
// errors are reserved for failures to start or signal-style termination.
func (e *Executor) Run(ctx context.Context, cmd driven.Command) (driven.ExecResult, error) {
	logger.Debug("exec: %s %v (dir=%s)", cmd.Path, cmd.Args, cmd.Dir)

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr
	if cmd.Echo != nil {
		proc.Stdout = io.MultiWriter(&stdout, cmd.Echo)
		proc.Stderr = io.MultiWriter(&stderr, cmd.Echo)
	}

	err := proc.Run()
	result := driven.ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return result, fmt.Errorf("running %s: %w", cmd.Path, ctxErr)
		}
		return result, fmt.Errorf("running %s: %w", cmd.Path, err)
	}
	return result, nil
}
