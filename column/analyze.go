package column

import (
	"math"

	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
)

// Analyze inspects a column's data and returns the StorageType the Raw
// codec should use.
//
// Integer columns pick the smallest of {8,16,32,64} bits that fits the
// observed min/max, under a single signed-range rule: signedness is
// always inherited from the logical type, so decoded values remain
// signed even when the range happens to fit an unsigned-compatible
// width. Float columns never narrow. Strings and booleans are
// byte-oriented.
func Analyze(a Array) (StorageType, error) {
	switch v := a.(type) {
	case Int32Array:
		return StorageType{Base: format.Int32, BitWidth: intBitWidth(minMaxInt32(v.Values))}, nil
	case Int64Array:
		return StorageType{Base: format.Int64, BitWidth: intBitWidth(minMaxInt64(v.Values))}, nil
	case Float32Array:
		return StorageType{Base: format.Float32, BitWidth: 32}, nil
	case Float64Array:
		return StorageType{Base: format.Float64, BitWidth: 64}, nil
	case StringArray:
		return StorageType{Base: format.String, BitWidth: 8}, nil
	case BoolArray:
		return StorageType{Base: format.Boolean, BitWidth: 8}, nil
	default:
		return StorageType{}, errs.ErrUnsupportedType
	}
}

func minMaxInt32(values []int32) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := int64(values[0]), int64(values[0])
	for _, v := range values[1:] {
		if int64(v) < min {
			min = int64(v)
		}
		if int64(v) > max {
			max = int64(v)
		}
	}

	return min, max
}

func minMaxInt64(values []int64) (int64, int64) {
	if len(values) == 0 {
		return 0, 0
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	return min, max
}

// intBitWidth picks the smallest width in {8,16,32,64} whose signed,
// two's-complement range covers [min, max].
//
// A narrower unsigned-compatible width is permitted for non-negative
// columns, but the on-disk column definition has no field to record
// which interpretation a narrow width used, and the reader must pick
// one deterministically to decode. This resolves that ambiguity by
// always sizing to the signed range: every non-negative column still
// gets the narrowest width that fits it under signed two's complement,
// so decoding by sign-extension is always correct and no extra on-disk
// bit is needed.
func intBitWidth(min, max int64) uint8 {
	switch {
	case min >= math.MinInt8 && max <= math.MaxInt8:
		return 8
	case min >= math.MinInt16 && max <= math.MaxInt16:
		return 16
	case min >= math.MinInt32 && max <= math.MaxInt32:
		return 32
	default:
		return 64
	}
}
