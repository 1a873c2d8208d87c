// Package matrix normalises rectangular in-memory numeric arrays.
// Column order defines variable order; names are synthesised when the
// caller supplies none.
package matrix

import (
	"context"
	"fmt"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/frame"
)

// Ensure Normaliser implements the interface.
var _ driven.DataNormaliser = (*Normaliser)(nil)

// Normaliser handles in-memory numeric observation matrices.
type Normaliser struct{}

// New creates a new matrix normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// InputKind returns the shape this normaliser handles.
func (n *Normaliser) InputKind() domain.DataInputKind {
	return domain.DataInputMatrix
}

// Normalise converts the matrix to a labelled table and writes it as
// the canonical delimited file.
func (n *Normaliser) Normalise(_ context.Context, input domain.DataInput, opts driven.NormaliseOptions) (*driven.NormaliseResult, error) {
	m, ok := input.(domain.Matrix)
	if !ok {
		return nil, fmt.Errorf("%w: matrix normaliser cannot handle %s input", domain.ErrInvalidInput, input.InputKind())
	}

	table, err := m.Table()
	if err != nil {
		return nil, err
	}
	return frame.WriteTable(table, opts)
}
