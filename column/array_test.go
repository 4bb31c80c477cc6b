package column

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInt32ArrayNeverNull(t *testing.T) {
	a := Int32Array{Values: []int32{1, 2, 3}}
	require.Equal(t, 3, a.Len())
	for i := 0; i < a.Len(); i++ {
		require.False(t, a.IsNull(i))
	}
}

func TestFloat64ArrayNaNIsNull(t *testing.T) {
	a := Float64Array{Values: []float64{1.5, math.NaN(), 3.5}}
	require.False(t, a.IsNull(0))
	require.True(t, a.IsNull(1))
	require.False(t, a.IsNull(2))
}

func TestBoolArrayTriState(t *testing.T) {
	a := NewBoolArray([]bool{true, false, true}, []bool{false, false, true})
	require.Equal(t, BoolTrue, a.Values[0])
	require.Equal(t, BoolFalse, a.Values[1])
	require.Equal(t, BoolNull, a.Values[2])
	require.True(t, a.IsNull(2))
	require.False(t, a.IsNull(0))
}

func TestStringArrayNullMask(t *testing.T) {
	a := StringArray{Values: []string{"x", "", "z"}, Null: []bool{false, true, false}}
	require.False(t, a.IsNull(0))
	require.True(t, a.IsNull(1))
	require.False(t, a.IsNull(2))

	noNulls := StringArray{Values: []string{"a", "b"}}
	require.False(t, noNulls.IsNull(0))
	require.False(t, noNulls.IsNull(1))
}

func TestNewFloat64ArrayFromInts(t *testing.T) {
	a := NewFloat64ArrayFromInts([]int64{1, 2, 3}, []bool{false, true, false})
	require.Equal(t, 1.0, a.Values[0])
	require.True(t, math.IsNaN(a.Values[1]))
	require.Equal(t, 3.0, a.Values[2])
	require.True(t, a.IsNull(1))
}

func TestNewStringArrayFromInts(t *testing.T) {
	a := NewStringArrayFromInts([]int64{10, -5}, []bool{false, true})
	require.Equal(t, "10", a.Values[0])
	require.True(t, a.Null[1])

	noNulls := NewStringArrayFromInts([]int64{1, 2}, nil)
	require.Nil(t, noNulls.Null)
}
