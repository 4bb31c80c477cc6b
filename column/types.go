// Package column implements the HYBF type model (C1): logical types,
// storage types, and the column descriptor that is recorded verbatim
// in a file's column definitions.
package column

import (
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
)

// StorageType describes how a column's values are physically laid out:
// the logical base type plus the bit width the Raw codec uses for
// fixed-width values.
type StorageType struct {
	Base     format.LogicalType
	BitWidth uint8
}

// Type is a column's on-disk descriptor: its name, its user-visible
// logical type, and its analysed storage type. Type values are
// produced once at write time and are immutable afterward.
type Type struct {
	Name    string
	Logical format.LogicalType
	Storage StorageType
}

// Validate checks the invariants a Type must hold before it can be
// written: a 1-255 byte name and a recognised logical type.
func (t Type) Validate() error {
	if len(t.Name) == 0 || len(t.Name) > 255 {
		return errs.ErrNameTooLong
	}
	if !t.Logical.Valid() {
		return errs.ErrUnknownLogicalType
	}

	return nil
}
