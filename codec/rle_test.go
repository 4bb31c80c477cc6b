package codec

import (
	"testing"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/stretchr/testify/require"
)

func TestRLES5WorkedExample(t *testing.T) {
	values := make([]int32, 0, 300)
	for _, v := range []int32{1, 2, 3} {
		for i := 0; i < 100; i++ {
			values = append(values, v)
		}
	}
	data := column.Int32Array{Values: values}
	st, err := column.Analyze(data)
	require.NoError(t, err)

	rs := runs(data)
	require.Len(t, rs, 3)
	require.Equal(t, uint32(100), rs[0].n)

	decoded := roundTrip(t, RLE{}, data, st)
	got := decoded.(column.Int32Array)
	require.Equal(t, values, got.Values)
}

func TestRLEDecodeRejectsMismatchedRowCount(t *testing.T) {
	data := column.Int32Array{Values: []int32{1, 1, 2}}
	st, _ := column.Analyze(data)
	payload, err := RLE{}.Encode(data, st)
	require.NoError(t, err)

	_, err = RLE{}.Decode(payload, data.Logical(), st, 999)
	require.ErrorIs(t, err, errs.ErrInvalidEncoding)
}

func TestRLESingleRunColumn(t *testing.T) {
	data := column.Int32Array{Values: []int32{9, 9, 9}}
	st, _ := column.Analyze(data)
	decoded := roundTrip(t, RLE{}, data, st)
	require.Equal(t, []int32{9, 9, 9}, decoded.(column.Int32Array).Values)
}
