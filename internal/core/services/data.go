package services

import (
	"context"
	"fmt"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/core/ports/driven"
	"github.com/lattice-labs/gobn-cli/internal/logger"
)

// DataService turns any accepted tabular input into the canonical
// delimited data file, via the normaliser registered for its shape.
type DataService struct {
	registry  driven.NormaliserRegistry
	outputPath string
	delimiter string
}

// NewDataService creates a data service. Normalised output is written
// to outputPath; delimiter empty means whitespace, the solver default.
func NewDataService(registry driven.NormaliserRegistry, outputPath, delimiter string) *DataService {
	return &DataService{
		registry:   registry,
		outputPath: outputPath,
		delimiter:  delimiter,
	}
}

// Normalise produces the data file and ordered variable-name list for
// the input. The variable list is what the result parser later maps the
// solver's output back onto.
func (s *DataService) Normalise(ctx context.Context, input domain.DataInput) (*driven.NormaliseResult, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: nil data input", domain.ErrInvalidInput)
	}

	n, ok := s.registry.For(input.InputKind())
	if !ok {
		return nil, fmt.Errorf("%w: no normaliser for %s input", domain.ErrInvalidInput, input.InputKind())
	}

	result, err := n.Normalise(ctx, input, driven.NormaliseOptions{
		OutputPath:  s.outputPath,
		Delimiter:   s.delimiter,
		WriteHeader: true,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("normalised %s input: %d variable(s) at %s", input.InputKind(), len(result.Variables), result.Path)
	return result, nil
}

// Delimiter returns the configured column delimiter ("" = whitespace).
func (s *DataService) Delimiter() string {
	return s.delimiter
}
