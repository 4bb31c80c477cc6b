package codec

import (
	"math"
	"strconv"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// Dictionary is codec tag 4: distinct values are stored once in a
// dictionary and each row stores a bit-packed code indexing it.
// Codes are assigned in first-appearance order; a null value (when
// present) occupies one dictionary slot like any other distinct value.
type Dictionary struct{}

func (Dictionary) Tag() format.CodecTag { return format.CodecDictionary }

// dictKey returns a comparable map key for a cell, used to detect
// repeated values regardless of logical type. Nulls of any type share
// the same key so they collapse to a single dictionary entry.
func dictKey(logical format.LogicalType, c cell) string {
	if c.isNull {
		return "N"
	}
	switch logical {
	case format.Int32, format.Int64:
		return "I" + strconv.FormatInt(c.i64, 10)
	case format.Float32, format.Float64:
		return "F" + strconv.FormatUint(math.Float64bits(c.f64), 16)
	case format.String:
		return "S" + c.str
	case format.Boolean:
		return "B" + strconv.Itoa(int(c.b))
	default:
		return ""
	}
}

// distinctValues walks data in row order and returns its distinct
// cells in first-appearance order, plus a per-row code slice.
func distinctValues(data column.Array) (dict []cell, codes []uint32) {
	logical := data.Logical()
	index := make(map[string]uint32)
	codes = make([]uint32, data.Len())
	for i := 0; i < data.Len(); i++ {
		c := cellAt(data, i)
		key := dictKey(logical, c)
		code, ok := index[key]
		if !ok {
			code = uint32(len(dict))
			index[key] = code
			dict = append(dict, c)
		}
		codes[i] = code
	}

	return dict, codes
}

// codeWidth returns the bit width for dictSize codes:
// ceil(log2(max(2, dict_size))), clamped up to the nearest of
// {1,2,4,8,16,32}.
func codeWidth(dictSize int) int {
	n := dictSize
	if n < 2 {
		n = 2
	}
	bits := 0
	for (1 << bits) < n {
		bits++
	}
	switch {
	case bits <= 1:
		return 1
	case bits <= 2:
		return 2
	case bits <= 4:
		return 4
	case bits <= 8:
		return 8
	case bits <= 16:
		return 16
	default:
		return 32
	}
}

func (Dictionary) EstimateSize(data column.Array, st column.StorageType) (uint64, error) {
	dict, codes := distinctValues(data)
	width := codeWidth(len(dict))

	total := uint64(4) // dict_size
	for _, c := range dict {
		total += uint64(cellWireSize(data.Logical(), st, c))
	}
	total++ // code_width byte
	total += uint64((len(codes)*width + 7) / 8)

	return total, nil
}

func (Dictionary) Encode(data column.Array, st column.StorageType) ([]byte, error) {
	dict, codes := distinctValues(data)
	width := codeWidth(len(dict))

	w := bitio.NewWriter(16 + len(dict)*(int(st.BitWidth)/8+4) + (len(codes)*width+7)/8)
	w.WriteU32(uint32(len(dict)))
	for _, c := range dict {
		if err := encodeCell(w, data.Logical(), st, c); err != nil {
			return nil, err
		}
	}
	w.WriteU8(uint8(width))

	wide := make([]uint64, len(codes))
	for i, c := range codes {
		wide[i] = uint64(c)
	}
	w.WriteBitPacked(wide, width)

	return w.Bytes(), nil
}

func (Dictionary) Decode(payload []byte, logical format.LogicalType, st column.StorageType, rowCount int) (column.Array, error) {
	r := bitio.NewReader(payload)
	dictSize, err := r.ReadU32()
	if err != nil {
		return nil, err
	}

	dict := make([]cell, dictSize)
	for i := range dict {
		c, err := decodeCell(r, logical, st)
		if err != nil {
			return nil, err
		}
		dict[i] = c
	}

	widthByte, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	width := int(widthByte)

	codes, err := r.ReadBitPacked(rowCount, width)
	if err != nil {
		return nil, err
	}

	cells := make([]cell, rowCount)
	for i, code := range codes {
		if code >= uint64(dictSize) {
			return nil, errs.ErrInvalidEncoding
		}
		cells[i] = dict[code]
	}

	return buildArray(logical, cells)
}
