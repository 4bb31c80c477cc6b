package codec

import (
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// SingleValue is codec tag 2: a column where every row holds the same
// value (including "every row is null") collapses to one stored value
// plus a row count.
type SingleValue struct{}

func (SingleValue) Tag() format.CodecTag { return format.CodecSingleValue }

func (SingleValue) EstimateSize(data column.Array, st column.StorageType) (uint64, error) {
	var valueSize int
	if data.Len() == 0 {
		valueSize = int(st.BitWidth) / 8
	} else {
		valueSize = cellWireSize(data.Logical(), st, cellAt(data, 0))
	}

	return uint64(valueSize) + 4, nil
}

func (SingleValue) Encode(data column.Array, st column.StorageType) ([]byte, error) {
	w := bitio.NewWriter(16)
	var c cell
	if data.Len() > 0 {
		c = cellAt(data, 0)
	}
	if err := encodeCell(w, data.Logical(), st, c); err != nil {
		return nil, err
	}
	w.WriteU32(uint32(data.Len()))

	return w.Bytes(), nil
}

func (SingleValue) Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	r := bitio.NewReader(payload)
	c, err := decodeCell(r, logical, st)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadU32(); err != nil {
		return nil, err
	}

	cells := make([]cell, rowCount)
	for i := range cells {
		cells[i] = c
	}

	return buildArray(logical, cells)
}
