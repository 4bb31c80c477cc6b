package codec

import (
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// Raw is the fallback codec (tag 1): every value is written in its
// declared storage width, row-major, with no compression. It is always
// applicable and is the only codec the Minimal container ever uses.
type Raw struct{}

func (Raw) Tag() format.CodecTag { return format.CodecRaw }

func (Raw) EstimateSize(data column.Array, st column.StorageType) (uint64, error) {
	if data.Logical() != format.String {
		// Fixed-width: exact, n * bit_width/8 bytes.
		return uint64(data.Len()) * uint64(st.BitWidth) / 8, nil
	}

	var total uint64
	for i := 0; i < data.Len(); i++ {
		total += uint64(cellWireSize(format.String, st, cellAt(data, i)))
	}

	return total, nil
}

func (Raw) Encode(data column.Array, st column.StorageType) ([]byte, error) {
	w := bitio.NewWriter(int(st.BitWidth)/8*data.Len() + 8)
	for i := 0; i < data.Len(); i++ {
		if err := encodeCell(w, data.Logical(), st, cellAt(data, i)); err != nil {
			return nil, err
		}
	}

	return w.Bytes(), nil
}

func (Raw) Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	return Raw{}.DecodeReader(bitio.NewReader(payload), logical, st, rowCount)
}

// DecodeReader decodes a Raw payload of rowCount values directly from
// r's current position, without requiring the caller to know the
// payload's byte length in advance. The Minimal container (C5) has no
// per-column length prefix, so it decodes columns this way in place
// against the file's shared cursor; the Compressed container (C6)
// instead slices out payload_length bytes first and calls Decode.
func (Raw) DecodeReader(r *bitio.Reader, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	if !logical.Valid() {
		return nil, errs.ErrUnknownLogicalType
	}

	cells := make([]cell, rowCount)
	for i := 0; i < rowCount; i++ {
		c, err := decodeCell(r, logical, st)
		if err != nil {
			return nil, err
		}
		cells[i] = c
	}

	return buildArray(logical, cells)
}
