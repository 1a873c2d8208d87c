package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrix_Validate(t *testing.T) {
	valid := Matrix{Rows: [][]int{{0, 1}, {1, 0}}}
	assert.NoError(t, valid.Validate())

	ragged := Matrix{Rows: [][]int{{0, 1}, {1}}}
	assert.ErrorIs(t, ragged.Validate(), ErrMalformedData)

	empty := Matrix{}
	assert.ErrorIs(t, empty.Validate(), ErrMalformedData)

	noColumns := Matrix{Rows: [][]int{{}}}
	assert.ErrorIs(t, noColumns.Validate(), ErrMalformedData)

	badNames := Matrix{Names: []VariableName{"A"}, Rows: [][]int{{0, 1}}}
	assert.ErrorIs(t, badNames.Validate(), ErrMalformedData)
}

func TestMatrix_Table_SynthesisesNames(t *testing.T) {
	m := Matrix{Rows: [][]int{{0, 1, 2}, {1, 0, 2}}}

	table, err := m.Table()

	require.NoError(t, err)
	assert.Equal(t, []VariableName{"V0", "V1", "V2"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"0", "1", "2"}, table.Rows[0])
}

func TestMatrix_Table_KeepsSuppliedNames(t *testing.T) {
	m := Matrix{
		Names: []VariableName{"X", "Y"},
		Rows:  [][]int{{1, 2}},
	}

	table, err := m.Table()

	require.NoError(t, err)
	assert.Equal(t, []VariableName{"X", "Y"}, table.Columns)
}

func TestDataTable_Validate(t *testing.T) {
	valid := DataTable{
		Columns: []VariableName{"A", "B"},
		Rows:    [][]string{{"0", "1"}},
	}
	assert.NoError(t, valid.Validate())

	partial := DataTable{
		Columns: []VariableName{"A", "B"},
		Rows:    [][]string{{"0", "1"}, {"0"}},
	}
	assert.ErrorIs(t, partial.Validate(), ErrMalformedData)

	noRows := DataTable{Columns: []VariableName{"A"}}
	assert.ErrorIs(t, noRows.Validate(), ErrMalformedData)

	noColumns := DataTable{Rows: [][]string{{"0"}}}
	assert.ErrorIs(t, noColumns.Validate(), ErrMalformedData)

	emptyName := DataTable{
		Columns: []VariableName{"A", ""},
		Rows:    [][]string{{"0", "1"}},
	}
	assert.ErrorIs(t, emptyName.Validate(), ErrMalformedData)
}

func TestSynthesiseNames(t *testing.T) {
	assert.Equal(t, []VariableName{"V0", "V1", "V2"}, SynthesiseNames(3))
	assert.Empty(t, SynthesiseNames(0))
}
