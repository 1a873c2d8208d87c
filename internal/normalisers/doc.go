// Package normalisers provides the data normalisers that convert each
// accepted tabular input shape into the solver's expected delimited
// data file.
//
// Each subpackage handles one input shape:
//
//   - file: an existing solver-compatible data file, passed through unchanged
//   - matrix: a rectangular in-memory numeric array
//   - frame: a labelled tabular frame with named columns
//
// The Registry in this package selects the normaliser by input kind.
// All normalisers return the ordered variable-name list alongside the
// file, because the result parser must map solver output back onto
// exactly those names.
package normalisers
