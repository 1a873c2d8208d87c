package domain

import (
	"fmt"
	"strconv"
)

// DataInputKind discriminates the tabular shapes a learn run accepts.
type DataInputKind string

// Available data input kinds.
const (
	// DataInputFile is a path to an already solver-compatible data file.
	DataInputFile DataInputKind = "file"

	// DataInputMatrix is an in-memory numeric observation matrix.
	DataInputMatrix DataInputKind = "matrix"

	// DataInputFrame is a labelled tabular frame with named columns.
	DataInputFrame DataInputKind = "frame"
)

// DataInput is one of the tabular representations accepted by the data
// normaliser: a FileRef, a Matrix, or a DataTable.
type DataInput interface {
	// InputKind returns the shape discriminator used for normaliser selection.
	InputKind() DataInputKind
}

// FileRef references a data file assumed to already be in the solver's
// expected format. It is passed through unchanged.
type FileRef struct {
	// Path is the location of the existing data file.
	Path string

	// HasHeader indicates the first line carries variable names.
	HasHeader bool
}

// InputKind returns the shape discriminator.
func (FileRef) InputKind() DataInputKind {
	return DataInputFile
}

// Matrix is a rectangular in-memory array of discrete observations.
// Column order defines variable order; Names may be empty, in which case
// positional names are synthesised during normalisation.
type Matrix struct {
	// Names optionally labels the columns.
	Names []VariableName

	// Rows holds one observation per entry.
	Rows [][]int
}

// InputKind returns the shape discriminator.
func (Matrix) InputKind() DataInputKind {
	return DataInputMatrix
}

// Validate rejects ragged or empty matrices, and a Names slice whose
// length disagrees with the column count.
func (m Matrix) Validate() error {
	if len(m.Rows) == 0 {
		return &MalformedDataError{Reason: "matrix has no rows"}
	}
	width := len(m.Rows[0])
	if width == 0 {
		return &MalformedDataError{Reason: "matrix has no columns"}
	}
	for i, row := range m.Rows {
		if len(row) != width {
			return &MalformedDataError{
				Reason: fmt.Sprintf("row %d has %d values, want %d", i, len(row), width),
			}
		}
	}
	if len(m.Names) != 0 && len(m.Names) != width {
		return &MalformedDataError{
			Reason: fmt.Sprintf("%d column names for %d columns", len(m.Names), width),
		}
	}
	return nil
}

// Table converts the matrix into a labelled frame, synthesising
// positional names when none were supplied.
func (m Matrix) Table() (DataTable, error) {
	if err := m.Validate(); err != nil {
		return DataTable{}, err
	}

	names := m.Names
	if len(names) == 0 {
		names = SynthesiseNames(len(m.Rows[0]))
	}

	rows := make([][]string, len(m.Rows))
	for i, row := range m.Rows {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		rows[i] = cells
	}

	return DataTable{Columns: names, Rows: rows}, nil
}

// DataTable is a labelled rectangular frame: an ordered variable-name
// list plus observation rows. Row length always equals the column count.
type DataTable struct {
	// Columns is the ordered variable-name list.
	Columns []VariableName

	// Rows holds one observation per entry, cell values as written to
	// the data file.
	Rows [][]string
}

// InputKind returns the shape discriminator.
func (DataTable) InputKind() DataInputKind {
	return DataInputFrame
}

// Validate rejects frames with no columns, no rows, partial rows or
// empty column names.
func (t DataTable) Validate() error {
	if len(t.Columns) == 0 {
		return &MalformedDataError{Reason: "table has no variables"}
	}
	if len(t.Rows) == 0 {
		return &MalformedDataError{Reason: "table has no rows"}
	}
	for _, c := range t.Columns {
		if c == "" {
			return &MalformedDataError{Reason: "table has an empty variable name"}
		}
	}
	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return &MalformedDataError{
				Reason: fmt.Sprintf("row %d has %d values, want %d", i, len(row), len(t.Columns)),
			}
		}
	}
	return nil
}

// SynthesiseNames produces positional variable names V0..Vn-1 for data
// supplied without labels.
func SynthesiseNames(n int) []VariableName {
	names := make([]VariableName, n)
	for i := range names {
		names[i] = VariableName("V" + strconv.Itoa(i))
	}
	return names
}
