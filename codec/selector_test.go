package codec

import (
	"testing"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/format"
	"github.com/stretchr/testify/require"
)

func TestSelectPicksNullForAllNullColumn(t *testing.T) {
	data := column.NewFloat64ArrayFromInts(make([]int64, 1000), trueMask(1000))
	st, err := column.Analyze(data)
	require.NoError(t, err)

	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecNull, chosen.Tag())
}

func TestSelectPicksSingleValue(t *testing.T) {
	data := column.Int32Array{Values: []int32{7, 7, 7, 7, 7}}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecSingleValue, chosen.Tag())
}

func TestSelectPicksRLEOverDictionaryWhenRunsCheaper(t *testing.T) {
	values := make([]int32, 0, 300)
	for _, v := range []int32{1, 2, 3} {
		for i := 0; i < 100; i++ {
			values = append(values, v)
		}
	}
	data := column.Int32Array{Values: values}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecRLE, chosen.Tag())
}

func TestSelectPicksDictionaryForLowCardinalityNoisyData(t *testing.T) {
	values := make([]string, 1000)
	cats := []string{"A", "B", "C"}
	for i := range values {
		// (i*7)%3 == i%3, so the values cycle A,B,C: every run has
		// length 1 (RLE's mean run stays below 4) while the category
		// count stays at 3.
		values[i] = cats[(i*7)%3]
	}
	data := column.StringArray{Values: values}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecDictionary, chosen.Tag())
}

func TestSelectFallsBackToRawForHighCardinality(t *testing.T) {
	values := make([]int32, 100)
	for i := range values {
		values[i] = int32(i)
	}
	data := column.Int32Array{Values: values}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecRaw, chosen.Tag())
}

func TestSelectEmptyColumnIsRaw(t *testing.T) {
	data := column.Int32Array{}
	st, _ := column.Analyze(data)
	chosen, err := Select(data, st)
	require.NoError(t, err)
	require.Equal(t, format.CodecRaw, chosen.Tag())
}

func trueMask(n int) []bool {
	m := make([]bool, n)
	for i := range m {
		m[i] = true
	}

	return m
}
