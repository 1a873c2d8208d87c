package driven

import (
	"context"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
)

// NormaliseOptions controls how the canonical data file is produced.
type NormaliseOptions struct {
	// OutputPath is where the canonical data file is written. Ignored
	// by pass-through normalisers that keep an existing file in place.
	OutputPath string

	// Delimiter separates columns in the output file. Empty means
	// whitespace (a single space), the solver's default.
	Delimiter string

	// WriteHeader emits the variable names as the first line.
	WriteHeader bool
}

// Separator returns the effective column separator.
func (o NormaliseOptions) Separator() string {
	if o.Delimiter == "" {
		return " "
	}
	return o.Delimiter
}

// NormaliseResult describes the canonical data file handed to the solver.
type NormaliseResult struct {
	// Path is the data file the solver will read.
	Path string

	// Variables is the ordered variable-name list. The result parser
	// maps solver output back to exactly these names.
	Variables []domain.VariableName

	// Rows is the observation count written (zero for pass-through).
	Rows int

	// HasHeader reports whether the file's first line is a header.
	HasHeader bool
}

// DataNormaliser converts one tabular input shape into the solver's
// expected delimited file. Each normaliser handles a single input kind.
type DataNormaliser interface {
	// InputKind returns the shape this normaliser handles.
	InputKind() domain.DataInputKind

	// Normalise produces the canonical data file and the ordered
	// variable-name list for the given input.
	Normalise(ctx context.Context, input domain.DataInput, opts NormaliseOptions) (*NormaliseResult, error)
}

// NormaliserRegistry selects the normaliser for an input shape.
type NormaliserRegistry interface {
	// For returns the normaliser registered for the kind, if any.
	For(kind domain.DataInputKind) (DataNormaliser, bool)

	// Register adds a normaliser, replacing any previous one for its kind.
	Register(n DataNormaliser)
}
