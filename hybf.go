// Package hybf is the public facade of the HYBF encoding engine: a
// self-describing, column-oriented binary container for tabular data.
// It re-exports the container package's write/read/sniff operations
// and the column package's Array type as a thin convenience wrapper
// around the core codec; the array constructors stay in package column.
//
// A table is an ordered list of named columns, each a column.Array of
// one of six logical types (Int32, Int64, Float32, Float64, String,
// Boolean). WriteTable picks the Minimal or Compressed container
// automatically based on estimated size; ReadTable transparently
// handles either.
package hybf

import (
	"io"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/container"
	"github.com/hybfio/hybf/format"
)

// Column names one table column and its values.
type Column = container.Column

// FormatKind identifies which container layout a file uses.
type FormatKind = format.Kind

const (
	// Minimal is the small-table container: uncompressed Raw columns.
	Minimal = format.Minimal
	// Compressed is the per-column codec container.
	Compressed = format.Compressed
)

// Array is a single column's in-memory values.
type Array = column.Array

// WriteTable encodes columns as a complete HYBF file and writes it to
// w, choosing the Minimal or Compressed container automatically.
func WriteTable(w io.Writer, columns []Column) error {
	return container.WriteTable(w, columns)
}

// ReadTable decodes a complete HYBF file from data.
func ReadTable(data []byte) ([]Column, error) {
	return container.ReadTable(data)
}

// SniffFormat reports which container kind data uses without decoding
// its column definitions or data section.
func SniffFormat(data []byte) (FormatKind, error) {
	return container.SniffFormat(data)
}
