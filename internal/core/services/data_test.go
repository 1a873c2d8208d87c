package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lattice-labs/gobn-cli/internal/core/domain"
	"github.com/lattice-labs/gobn-cli/internal/normalisers"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/frame"
	"github.com/lattice-labs/gobn-cli/internal/normalisers/matrix"
)

func newDataService(t *testing.T, delimiter string) *DataService {
	t.Helper()
	registry := normalisers.NewRegistry(frame.New(), matrix.New())
	return NewDataService(registry, filepath.Join(t.TempDir(), "data.dat"), delimiter)
}

func TestDataServiceNormalisesFrame(t *testing.T) {
	svc := newDataService(t, "")

	result, err := svc.Normalise(context.Background(), domain.DataTable{
		Columns: []domain.VariableName{"smoking", "cancer"},
		Rows:    [][]string{{"1", "1"}, {"0", "1"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.VariableName{"smoking", "cancer"}, result.Variables)
	assert.Equal(t, 2, result.Rows)
	assert.True(t, result.HasHeader)

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "smoking cancer\n1 1\n0 1\n", string(content))
}

func TestDataServiceNormalisesMatrix(t *testing.T) {
	svc := newDataService(t, "")

	result, err := svc.Normalise(context.Background(), domain.Matrix{
		Rows: [][]int{{1, 0, 1}, {0, 0, 1}},
	})
	require.NoError(t, err)

	// Unnamed columns get positional names.
	assert.Equal(t, []domain.VariableName{"V0", "V1", "V2"}, result.Variables)
}

func TestDataServiceNilInput(t *testing.T) {
	svc := newDataService(t, "")

	_, err := svc.Normalise(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDataServiceUnregisteredKind(t *testing.T) {
	// Registry without a file normaliser cannot handle FileRef input.
	registry := normalisers.NewRegistry(frame.New())
	svc := NewDataService(registry, filepath.Join(t.TempDir(), "data.dat"), "")

	_, err := svc.Normalise(context.Background(), domain.FileRef{Path: "/tmp/x.dat"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDataServiceCustomDelimiter(t *testing.T) {
	svc := newDataService(t, ",")
	assert.Equal(t, ",", svc.Delimiter())

	result, err := svc.Normalise(context.Background(), domain.DataTable{
		Columns: []domain.VariableName{"a", "b"},
		Rows:    [][]string{{"0", "1"}},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n0,1\n", string(content))
}
