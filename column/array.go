package column

import (
	"math"
	"strconv"

	"github.com/hybfio/hybf/format"
)

// Array is a tagged-sum-type realization of a column's values: a
// closed set of concrete, densely-packed column containers that every
// codec in the codec package is monomorphic over via a type switch,
// instead of dispatching through a class hierarchy.
//
// The six concrete implementations are Int32Array, Int64Array,
// Float32Array, Float64Array, BoolArray, and StringArray.
type Array interface {
	// Logical returns the column's user-visible logical type.
	Logical() format.LogicalType
	// Len returns the number of rows (including nulls).
	Len() int
	// IsNull reports whether row i holds a null value.
	IsNull(i int) bool
}

// Int32Array holds signed 32-bit integers. Integer arrays are treated
// as non-null by construction — callers with nullable integer data
// must promote to Float64Array (NaN-as-null) or StringArray before
// writing a table; NewFloat64ArrayFromInts and NewStringArrayFromInts
// perform that promotion.
type Int32Array struct{ Values []int32 }

func (a Int32Array) Logical() format.LogicalType { return format.Int32 }
func (a Int32Array) Len() int                    { return len(a.Values) }
func (a Int32Array) IsNull(int) bool             { return false }

// Int64Array holds signed 64-bit integers, non-null by construction.
type Int64Array struct{ Values []int64 }

func (a Int64Array) Logical() format.LogicalType { return format.Int64 }
func (a Int64Array) Len() int                    { return len(a.Values) }
func (a Int64Array) IsNull(int) bool             { return false }

// Float32Array holds IEEE-754 binary32 values. A NaN encodes null.
type Float32Array struct{ Values []float32 }

func (a Float32Array) Logical() format.LogicalType { return format.Float32 }
func (a Float32Array) Len() int                    { return len(a.Values) }
func (a Float32Array) IsNull(i int) bool           { return math.IsNaN(float64(a.Values[i])) }

// Float64Array holds IEEE-754 binary64 values. A NaN encodes null.
type Float64Array struct{ Values []float64 }

func (a Float64Array) Logical() format.LogicalType { return format.Float64 }
func (a Float64Array) Len() int                    { return len(a.Values) }
func (a Float64Array) IsNull(i int) bool           { return math.IsNaN(a.Values[i]) }

// Tri-state byte values used by BoolArray's wire representation:
// 0=false, 1=true, 2=null.
const (
	BoolFalse uint8 = 0
	BoolTrue  uint8 = 1
	BoolNull  uint8 = 2
)

// BoolArray holds tri-state boolean values, one byte per row.
type BoolArray struct{ Values []uint8 }

// NewBoolArray builds a BoolArray from plain bools and an optional null
// mask (nil means no nulls).
func NewBoolArray(values []bool, nullMask []bool) BoolArray {
	out := make([]uint8, len(values))
	for i, v := range values {
		switch {
		case nullMask != nil && nullMask[i]:
			out[i] = BoolNull
		case v:
			out[i] = BoolTrue
		default:
			out[i] = BoolFalse
		}
	}

	return BoolArray{Values: out}
}

func (a BoolArray) Logical() format.LogicalType { return format.Boolean }
func (a BoolArray) Len() int                    { return len(a.Values) }
func (a BoolArray) IsNull(i int) bool           { return a.Values[i] == BoolNull }

// StringArray holds UTF-8 strings with an explicit null mask, since Go
// strings have no null representation of their own (the wire encoding
// marks null with a 0xFFFF length sentinel; in memory nulls are
// tracked directly to avoid conflating null with "").
type StringArray struct {
	Values []string
	Null   []bool // nil means no nulls; otherwise same length as Values
}

func (a StringArray) Logical() format.LogicalType { return format.String }
func (a StringArray) Len() int                    { return len(a.Values) }
func (a StringArray) IsNull(i int) bool {
	return a.Null != nil && a.Null[i]
}

// NewFloat64ArrayFromInts promotes a nullable integer column to
// Float64Array with NaN-as-null.
func NewFloat64ArrayFromInts(values []int64, nullMask []bool) Float64Array {
	out := make([]float64, len(values))
	for i, v := range values {
		if nullMask != nil && nullMask[i] {
			out[i] = math.NaN()
		} else {
			out[i] = float64(v)
		}
	}

	return Float64Array{Values: out}
}

// NewStringArrayFromInts promotes a nullable integer column to
// StringArray, an alternative to NaN-as-null for callers that want to
// preserve exact integer text across the null boundary.
func NewStringArrayFromInts(values []int64, nullMask []bool) StringArray {
	strs := make([]string, len(values))
	nulls := make([]bool, len(values))
	any := false
	for i, v := range values {
		if nullMask != nil && nullMask[i] {
			nulls[i] = true
			any = true

			continue
		}
		strs[i] = strconv.FormatInt(v, 10)
	}
	if !any {
		nulls = nil
	}

	return StringArray{Values: strs, Null: nulls}
}
