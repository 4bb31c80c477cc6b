package container

import (
	"io"

	"github.com/hybfio/hybf/codec"
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// minimalThreshold is the hard constant of the format dispatcher: if a
// table's Raw-estimated payload plus header overhead is below this
// many bytes, the writer chooses the Minimal container; otherwise
// Compressed. It is fixed for this format version.
const minimalThreshold = 4096

// Column is one named column of a table, as exposed across the core's
// external interface: a name and its analysed-later array of values.
// A column's null mask is carried inside Data for the array kinds
// that need one (Float32/Float64 via NaN, String via its explicit
// mask, Boolean via its tri-state byte).
type Column struct {
	Name string
	Data column.Array
}

// WriteTable writes columns to w as a single HYBF file, choosing the
// Minimal or Compressed container via the format dispatcher. It is
// never partial: on error, nothing w has already received can be
// trusted to form a valid file, and the caller owns truncating w's
// underlying sink.
func WriteTable(w io.Writer, columns []Column) error {
	if len(columns) == 0 {
		return writeEmptyTable(w)
	}

	rowCount := columns[0].Data.Len()
	for _, c := range columns {
		if c.Data.Len() != rowCount {
			return errs.ErrInvalidEncoding
		}
	}

	defs := make([]column.Type, len(columns))
	data := make([]column.Array, len(columns))
	overhead := headerSize + 4
	var rawTotal uint64
	raw := codec.Raw{}

	for i, c := range columns {
		st, err := column.Analyze(c.Data)
		if err != nil {
			return err
		}
		defs[i] = column.Type{Name: c.Name, Logical: c.Data.Logical(), Storage: st}
		if err := defs[i].Validate(); err != nil {
			return err
		}
		data[i] = c.Data
		overhead += columnDefSize(c.Name)

		size, err := raw.EstimateSize(c.Data, st)
		if err != nil {
			return err
		}
		rawTotal += size
	}

	bw := bitio.NewWriter(int(rawTotal) + overhead)

	var encErr error
	if uint64(overhead)+rawTotal < minimalThreshold {
		encErr = encodeMinimal(bw, defs, data, uint32(rowCount))
	} else {
		encErr = encodeCompressed(bw, defs, data, uint32(rowCount))
	}
	if encErr != nil {
		return encErr
	}

	_, err := w.Write(bw.Bytes())

	return err
}

// writeEmptyTable writes the degenerate zero-column, zero-row
// Minimal container: header and row count block only.
func writeEmptyTable(w io.Writer) error {
	bw := bitio.NewWriter(headerSize + 4)
	writeHeader(bw, format.Minimal, 0, 0)
	_, err := w.Write(bw.Bytes())

	return err
}

// ReadTable reads a complete HYBF file from data, dispatching on the
// header's format_type to the Minimal or Compressed reader.
func ReadTable(data []byte) ([]Column, error) {
	r := bitio.NewReader(data)

	kind, columnCount, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	rowCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	defs, err := readColumnDefs(r, columnCount)
	if err != nil {
		return nil, err
	}

	var arrays []column.Array
	switch kind {
	case format.Minimal:
		arrays, err = decodeMinimal(r, defs, rowCount)
	case format.Compressed:
		arrays, err = decodeCompressed(r, defs, rowCount)
	default:
		return nil, errs.ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}

	columns := make([]Column, len(defs))
	for i, def := range defs {
		columns[i] = Column{Name: def.Name, Data: arrays[i]}
	}

	return columns, nil
}

// SniffFormat reads and validates only the 8-byte header — magic,
// version, format_type, column_count — without consuming the row
// count that follows or decoding column definitions or data. A buffer
// containing exactly 8 bytes is enough for SniffFormat to succeed.
// Since data is read-only and SniffFormat holds no cursor across
// calls, a fresh ReadTable(data) call always starts at byte 0
// regardless of whether SniffFormat ran first.
func SniffFormat(data []byte) (format.Kind, error) {
	r := bitio.NewReader(data)
	kind, _, err := readHeader(r)

	return kind, err
}
