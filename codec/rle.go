package codec

import (
	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// RLE is codec tag 3: runs of consecutive equal values collapse to
// (value, run_length) pairs.
type RLE struct{}

func (RLE) Tag() format.CodecTag { return format.CodecRLE }

// runs groups data into consecutive equal-value runs.
func runs(data column.Array) []struct {
	val cell
	n   uint32
} {
	var out []struct {
		val cell
		n   uint32
	}
	logical := data.Logical()
	for i := 0; i < data.Len(); i++ {
		c := cellAt(data, i)
		if len(out) > 0 && cellsEqual(logical, out[len(out)-1].val, c) {
			out[len(out)-1].n++

			continue
		}
		out = append(out, struct {
			val cell
			n   uint32
		}{val: c, n: 1})
	}

	return out
}

func (RLE) EstimateSize(data column.Array, st column.StorageType) (uint64, error) {
	total := uint64(4) // run_count
	for _, r := range runs(data) {
		total += uint64(cellWireSize(data.Logical(), st, r.val)) + 4
	}

	return total, nil
}

func (RLE) Encode(data column.Array, st column.StorageType) ([]byte, error) {
	rs := runs(data)
	w := bitio.NewWriter(8 + len(rs)*(int(st.BitWidth)/8+4))
	w.WriteU32(uint32(len(rs)))
	for _, r := range rs {
		if err := encodeCell(w, data.Logical(), st, r.val); err != nil {
			return nil, err
		}
		w.WriteU32(r.n)
	}

	return w.Bytes(), nil
}

func (RLE) Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	r := bitio.NewReader(payload)
	runCount, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	cells := make([]cell, 0, rowCount)
	for i := uint32(0); i < runCount; i++ {
		c, err := decodeCell(r, logical, st)
		if err != nil {
			return nil, err
		}
		n, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		for j := uint32(0); j < n; j++ {
			cells = append(cells, c)
		}
	}

	if len(cells) != rowCount {
		return nil, errs.ErrInvalidEncoding
	}

	return buildArray(logical, cells)
}
