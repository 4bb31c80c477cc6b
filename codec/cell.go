package codec

import (
	"math"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
)

// cell is a single row's value, type-erased across the six logical
// types. SingleValue, RLE, and Dictionary all need to carry "one
// column value" independent of row position, so they operate on cell
// rather than re-deriving per-type branches three times; Raw encodes
// and decodes cells row by row directly.
type cell struct {
	i64    int64   // Int32, Int64
	f64    float64 // Float32 (widened), Float64
	str    string  // String
	b      uint8   // Boolean tri-state
	isNull bool
}

// cellAt extracts row i of data as a cell.
func cellAt(data column.Array, i int) cell {
	switch v := data.(type) {
	case column.Int32Array:
		return cell{i64: int64(v.Values[i])}
	case column.Int64Array:
		return cell{i64: v.Values[i]}
	case column.Float32Array:
		f := v.Values[i]

		return cell{f64: float64(f), isNull: math.IsNaN(float64(f))}
	case column.Float64Array:
		f := v.Values[i]

		return cell{f64: f, isNull: math.IsNaN(f)}
	case column.StringArray:
		null := v.Null != nil && v.Null[i]

		return cell{str: v.Values[i], isNull: null}
	case column.BoolArray:
		return cell{b: v.Values[i], isNull: v.Values[i] == column.BoolNull}
	default:
		return cell{}
	}
}

// cellsEqual reports whether two cells of the same logical type carry
// the same value, treating all nulls of a type as equal to each other.
func cellsEqual(logical format.LogicalType, a, b cell) bool {
	if a.isNull != b.isNull {
		return false
	}
	if a.isNull {
		return true
	}
	switch logical {
	case format.Int32, format.Int64:
		return a.i64 == b.i64
	case format.Float32, format.Float64:
		return a.f64 == b.f64
	case format.String:
		return a.str == b.str
	case format.Boolean:
		return a.b == b.b
	default:
		return false
	}
}

// buildArray assembles rowCount cells into the column.Array for logical.
func buildArray(logical format.LogicalType, cells []cell) (column.Array, error) {
	switch logical {
	case format.Int32:
		out := make([]int32, len(cells))
		for i, c := range cells {
			out[i] = int32(c.i64)
		}

		return column.Int32Array{Values: out}, nil
	case format.Int64:
		out := make([]int64, len(cells))
		for i, c := range cells {
			out[i] = c.i64
		}

		return column.Int64Array{Values: out}, nil
	case format.Float32:
		out := make([]float32, len(cells))
		for i, c := range cells {
			if c.isNull {
				out[i] = float32(math.NaN())
			} else {
				out[i] = float32(c.f64)
			}
		}

		return column.Float32Array{Values: out}, nil
	case format.Float64:
		out := make([]float64, len(cells))
		for i, c := range cells {
			if c.isNull {
				out[i] = math.NaN()
			} else {
				out[i] = c.f64
			}
		}

		return column.Float64Array{Values: out}, nil
	case format.String:
		vals := make([]string, len(cells))
		nulls := make([]bool, len(cells))
		any := false
		for i, c := range cells {
			if c.isNull {
				nulls[i] = true
				any = true
			} else {
				vals[i] = c.str
			}
		}
		if !any {
			nulls = nil
		}

		return column.StringArray{Values: vals, Null: nulls}, nil
	case format.Boolean:
		out := make([]uint8, len(cells))
		for i, c := range cells {
			if c.isNull {
				out[i] = column.BoolNull
			} else {
				out[i] = c.b
			}
		}

		return column.BoolArray{Values: out}, nil
	default:
		return nil, errs.ErrUnknownLogicalType
	}
}

// encodeCell writes one cell in its Raw storage representation:
// fixed-width big-endian for numeric/bool types, u16-length-prefixed
// UTF-8 for strings with 0xFFFF marking null.
func encodeCell(w *bitio.Writer, logical format.LogicalType, st column.StorageType, c cell) error {
	switch logical {
	case format.Int32, format.Int64:
		writeRawInt(w, c.i64, st.BitWidth)
	case format.Float32:
		bits := math.Float32bits(float32(c.f64))
		w.WriteU32(bits)
	case format.Float64:
		bits := math.Float64bits(c.f64)
		w.WriteU64(bits)
	case format.Boolean:
		w.WriteU8(c.b)
	case format.String:
		if c.isNull {
			w.WriteU16(0xFFFF)

			return nil
		}
		b := []byte(c.str)
		w.WriteU16(uint16(len(b)))
		w.WriteBytes(b)
	default:
		return errs.ErrUnknownLogicalType
	}

	return nil
}

// decodeCell reads one cell in its Raw storage representation.
func decodeCell(r *bitio.Reader, logical format.LogicalType, st column.StorageType) (cell, error) {
	switch logical {
	case format.Int32, format.Int64:
		v, err := readRawInt(r, st.BitWidth)
		if err != nil {
			return cell{}, err
		}

		return cell{i64: v}, nil
	case format.Float32:
		bits, err := r.ReadU32()
		if err != nil {
			return cell{}, err
		}
		f := math.Float32frombits(bits)

		return cell{f64: float64(f), isNull: math.IsNaN(float64(f))}, nil
	case format.Float64:
		bits, err := r.ReadU64()
		if err != nil {
			return cell{}, err
		}
		f := math.Float64frombits(bits)

		return cell{f64: f, isNull: math.IsNaN(f)}, nil
	case format.Boolean:
		b, err := r.ReadU8()
		if err != nil {
			return cell{}, err
		}

		return cell{b: b, isNull: b == column.BoolNull}, nil
	case format.String:
		n, err := r.ReadU16()
		if err != nil {
			return cell{}, err
		}
		if n == 0xFFFF {
			return cell{isNull: true}, nil
		}
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return cell{}, err
		}

		return cell{str: string(b)}, nil
	default:
		return cell{}, errs.ErrUnknownLogicalType
	}
}

// cellWireSize returns the number of bytes encodeCell writes for c,
// used by EstimateSize for variable-width (string) columns.
func cellWireSize(logical format.LogicalType, st column.StorageType, c cell) int {
	switch logical {
	case format.String:
		if c.isNull {
			return 2
		}

		return 2 + len(c.str)
	default:
		return int(st.BitWidth) / 8
	}
}

// writeRawInt writes the low bitWidth bits of v, big-endian, two's
// complement. The same bit pattern is correct whether the column's
// values were analysed as non-negative (unsigned-compatible) or
// signed, since truncating a two's complement representation to its
// low N bits preserves both interpretations.
func writeRawInt(w *bitio.Writer, v int64, bitWidth uint8) {
	u := uint64(v)
	switch bitWidth {
	case 8:
		w.WriteU8(uint8(u))
	case 16:
		w.WriteU16(uint16(u))
	case 32:
		w.WriteU32(uint32(u))
	default:
		w.WriteU64(u)
	}
}

func readRawInt(r *bitio.Reader, bitWidth uint8) (int64, error) {
	switch bitWidth {
	case 8:
		v, err := r.ReadU8()
		if err != nil {
			return 0, err
		}

		return int64(int8(v)), nil
	case 16:
		v, err := r.ReadU16()
		if err != nil {
			return 0, err
		}

		return int64(int16(v)), nil
	case 32:
		v, err := r.ReadU32()
		if err != nil {
			return 0, err
		}

		return int64(int32(v)), nil
	default:
		v, err := r.ReadU64()
		if err != nil {
			return 0, err
		}

		return int64(v), nil
	}
}
