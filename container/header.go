// Package container implements the two on-disk container layouts
// (Minimal, Compressed) and the format dispatcher that chooses between
// them. Both layouts share an 8-byte header, a u32 row count, and a
// column-definition block; they differ only in how the data section
// stores each column's values.
package container

import (
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// headerSize is the fixed byte length of the shared header.
const headerSize = 8

// writeHeader appends the 8-byte header and the u32 row count.
func writeHeader(w *bitio.Writer, kind format.Kind, columnCount uint16, rowCount uint32) {
	w.WriteBytes([]byte(format.Magic))
	w.WriteU8(format.Version)
	w.WriteU8(uint8(kind))
	w.WriteU16(columnCount)
	w.WriteU32(rowCount)
}

// readHeader reads and validates the 8-byte header only: magic,
// version, format_type, column_count. It does not touch the row count
// that follows; callers needing the row count call ReadU32 themselves.
func readHeader(r *bitio.Reader) (kind format.Kind, columnCount uint16, err error) {
	magic, err := r.ReadBytes(4)
	if err != nil {
		return 0, 0, err
	}
	if string(magic) != format.Magic {
		return 0, 0, errs.ErrInvalidMagic
	}

	version, err := r.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	if version != format.Version {
		return 0, 0, errs.ErrUnsupportedVersion
	}

	formatByte, err := r.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	kind = format.Kind(formatByte)
	if kind != format.Minimal && kind != format.Compressed {
		return 0, 0, errs.ErrUnknownFormat
	}

	columnCount, err = r.ReadU16()
	if err != nil {
		return 0, 0, err
	}

	return kind, columnCount, nil
}

// columnDefSize returns the on-disk byte length of one column
// definition: name_length, name, logical_type, storage_base,
// storage_width.
func columnDefSize(name string) int {
	return 1 + len(name) + 1 + 1 + 1
}

// writeColumnDef appends one column definition.
func writeColumnDef(w *bitio.Writer, t column.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := w.WriteString(t.Name); err != nil {
		return err
	}
	w.WriteU8(uint8(t.Logical))
	w.WriteU8(uint8(t.Storage.Base))
	w.WriteU8(t.Storage.BitWidth)

	return nil
}

// readColumnDef reads one column definition.
func readColumnDef(r *bitio.Reader) (column.Type, error) {
	name, err := r.ReadString()
	if err != nil {
		return column.Type{}, err
	}

	logicalByte, err := r.ReadU8()
	if err != nil {
		return column.Type{}, err
	}
	logical := format.LogicalType(logicalByte)
	if !logical.Valid() {
		return column.Type{}, errs.ErrUnknownLogicalType
	}

	baseByte, err := r.ReadU8()
	if err != nil {
		return column.Type{}, err
	}
	base := format.LogicalType(baseByte)
	if !base.Valid() {
		return column.Type{}, errs.ErrUnknownLogicalType
	}

	width, err := r.ReadU8()
	if err != nil {
		return column.Type{}, err
	}

	return column.Type{
		Name:    name,
		Logical: logical,
		Storage: column.StorageType{Base: base, BitWidth: width},
	}, nil
}

// readColumnDefs reads n consecutive column definitions.
func readColumnDefs(r *bitio.Reader, n uint16) ([]column.Type, error) {
	defs := make([]column.Type, n)
	for i := range defs {
		def, err := readColumnDef(r)
		if err != nil {
			return nil, err
		}
		defs[i] = def
	}

	return defs, nil
}
