package codec

import (
	"math"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// Null is codec tag 5: every row in the column is null, so the payload
// carries only the row count.
type Null struct{}

func (Null) Tag() format.CodecTag { return format.CodecNull }

func (Null) EstimateSize(data column.Array, st column.StorageType) (uint64, error) {
	return 4, nil
}

func (Null) Encode(data column.Array, st column.StorageType) ([]byte, error) {
	w := bitio.NewWriter(4)
	w.WriteU32(uint32(data.Len()))

	return w.Bytes(), nil
}

func (Null) Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	r := bitio.NewReader(payload)
	if _, err := r.ReadU32(); err != nil {
		return nil, err
	}

	c := cell{isNull: true}
	if logical == format.Boolean {
		c.b = column.BoolNull
	}
	if logical == format.Float32 || logical == format.Float64 {
		c.f64 = math.NaN()
	}

	cells := make([]cell, rowCount)
	for i := range cells {
		cells[i] = c
	}

	return buildArray(logical, cells)
}
