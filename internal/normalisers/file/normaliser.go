// Package file normalises existing data files. A file input is assumed
// to already be in the solver's expected format and is passed through
// unchanged; only the variable names are recovered from it.
package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.DataNormaliser = (*Normaliser)(nil)

// Normaliser handles pre-existing solver-compatible data files.
type Normaliser struct{}

// New creates a new file normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// InputKind returns the shape this normaliser handles.
func (n *Normaliser) InputKind() domain.DataInputKind {
	return domain.DataInputFile
}

// Normalise reads just enough of the file to recover the ordered
// variable-name list: the header line when present, otherwise the
// column count of the first row with positional names synthesised.
// The file itself is not rewritten.
func (n *Normaliser) Normalise(_ context.Context, input domain.DataInput, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	ref, ok := input.(domain.FileRef)
	if !ok {
		return nil, fmt.Errorf("%w: file normaliser cannot handle %s input", domain.ErrInvalidInput, input.InputKind())
	}

	f, err := os.Open(ref.Path)
	if err != nil {
		return nil, fmt.Errorf("opening data file: %w", err)
	}
	defer f.Close()

	sep := opts.Separator()
	scanner := bufio.NewScanner(f)

	var variables []domain.VariableName
	rows := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if variables == nil {
			fields := splitColumns(line, sep)
			if len(fields) == 0 {
				return nil, &domain.MalformedDataError{Reason: "data file first line has no columns"}
			}
			if ref.HasHeader {
				variables = make([]domain.VariableName, len(fields))
				for i, name := range fields {
					if name == "" {
						return nil, &domain.MalformedDataError{
							Reason: fmt.Sprintf("data file header column %d is empty", i),
						}
					}
					variables[i] = domain.VariableName(name)
				}
				continue
			}
			variables = domain.SynthesiseNames(len(fields))
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	if variables == nil {
		return nil, &domain.MalformedDataError{Reason: "data file is empty"}
	}
	if rows == 0 {
		return nil, &domain.MalformedDataError{Reason: "data file has no observation rows"}
	}

	return &driven.NormaliseResult{
		Path:      ref.Path,
		Variables: variables,
		Rows:      rows,
		HasHeader: ref.HasHeader,
	}, nil
}

// splitColumns splits one line into column values. Whitespace delimiting
// merges adjacent separators, matching the solver's mergedelimiters
// behaviour; explicit delimiters split strictly.
func splitColumns(line, sep string) []string {
	if sep == " " {
		return strings.Fields(line)
	}
	return strings.Split(line, sep)
}
