// Package frame normalises labelled tabular frames: column labels
// become the variable names and row order is preserved.
package frame

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.DataNormaliser = (*Normaliser)(nil)

// Normaliser handles labelled tabular frames.
type Normaliser struct{}

// New creates a new frame normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// InputKind returns the shape this normaliser handles.
func (n *Normaliser) InputKind() domain.DataInputKind {
	return domain.DataInputFrame
}

// Normalise writes the frame as the canonical delimited data file.
func (n *Normaliser) Normalise(_ context.Context, input domain.DataInput, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	table, ok := input.(domain.DataTable)
	if !ok {
		return nil, fmt.Errorf("%w: frame normaliser cannot handle %s input", domain.ErrInvalidInput, input.InputKind())
	}
	return WriteTable(table, opts)
}

// WriteTable renders a validated table to the canonical delimited file.
// Shared with the matrix normaliser, which converts to a table first.
// The output row count always equals the input row count, and no cell
// may contain the separator: a value that would split across columns is
// malformed data, not something to quote or escape (the solver's reader
// has no quoting rules).
func WriteTable(table domain.DataTable, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}

	sep := opts.Separator()
	for _, name := range table.Columns {
		if err := checkCell(string(name), sep); err != nil {
			return nil, err
		}
	}
	for _, row := range table.Rows {
		for _, cell := range row {
			if err := checkCell(cell, sep); err != nil {
				return nil, err
			}
		}
	}

	var b strings.Builder
	if opts.WriteHeader {
		names := make([]string, len(table.Columns))
		for i, c := range table.Columns {
			names[i] = string(c)
		}
		b.WriteString(strings.Join(names, sep))
		b.WriteByte('\n')
	}
	for _, row := range table.Rows {
		b.WriteString(strings.Join(row, sep))
		b.WriteByte('\n')
	}

	if err := writeAtomic(opts.OutputPath, []byte(b.String())); err != nil {
		return nil, fmt.Errorf("writing data file: %w", err)
	}

	return &driven.NormaliseResult{
		Path:      opts.OutputPath,
		Variables: append([]domain.VariableName(nil), table.Columns...),
		Rows:      len(table.Rows),
		HasHeader: opts.WriteHeader,
	}, nil
}

// checkCell rejects values the separator would split across columns.
func checkCell(value, sep string) error {
	if strings.Contains(value, sep) || (sep == " " && strings.ContainsAny(value, " \t")) {
		return &domain.MalformedDataError{
			Reason: fmt.Sprintf("value %q contains the column delimiter", value),
		}
	}
	return nil
}

// writeAtomic replaces path via temp file and rename, so the solver
// never reads a half-written data file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
