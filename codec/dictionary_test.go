package codec

import (
	"testing"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/internal/bitio"
	"github.com/stretchr/testify/require"
)

func TestCodeWidth(t *testing.T) {
	cases := []struct {
		dictSize int
		want     int
	}{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 4}, {16, 4}, {17, 8}, {256, 8}, {257, 16}, {70000, 32},
	}
	for _, c := range cases {
		require.Equal(t, c.want, codeWidth(c.dictSize), "dictSize=%d", c.dictSize)
	}
}

func TestDictionaryS4WorkedExample(t *testing.T) {
	values := make([]string, 1000)
	cats := []string{"A", "B", "C"}
	for i := range values {
		values[i] = cats[i%3]
	}
	data := column.StringArray{Values: values}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	dict, codes := distinctValues(data)
	require.Len(t, dict, 3)
	require.Equal(t, 2, codeWidth(len(dict)))
	require.Len(t, codes, 1000)

	decoded := roundTrip(t, Dictionary{}, data, st)
	got := decoded.(column.StringArray)
	require.Equal(t, values, got.Values)
}

func TestDictionaryWithNulls(t *testing.T) {
	data := column.NewFloat64ArrayFromInts([]int64{1, 2, 1, 2}, []bool{false, false, true, false})
	st, err := column.Analyze(data)
	require.NoError(t, err)

	decoded := roundTrip(t, Dictionary{}, data, st)
	require.True(t, decoded.IsNull(2))
	require.False(t, decoded.IsNull(0))
}

func TestDictionaryDecodeRejectsOutOfRangeCode(t *testing.T) {
	data := column.Int32Array{Values: []int32{1, 2, 1}}
	st, _ := column.Analyze(data)
	payload, err := Dictionary{}.Encode(data, st)
	require.NoError(t, err)

	// Corrupt the code stream's width byte region is brittle; instead
	// build a payload with a too-small dictionary directly.
	w := bitio.NewWriter(16)
	w.WriteU32(1) // dict_size = 1
	require.NoError(t, encodeCell(w, data.Logical(), st, cell{i64: 1}))
	w.WriteU8(1) // code_width
	w.WriteBitPacked([]uint64{1, 1, 1}, 1)
	bad := w.Bytes()

	_, err = Dictionary{}.Decode(bad, data.Logical(), st, 3)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
	_ = payload
}
