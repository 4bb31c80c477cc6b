package codec

import (
	"testing"

	"github.com/hybfio/hybf/column"
	"github.com/stretchr/testify/require"
)

func TestNullS2WorkedExample(t *testing.T) {
	values := make([]float64, 1000)
	nulls := make([]bool, 1000)
	for i := range values {
		nulls[i] = true
	}
	data := column.NewFloat64ArrayFromInts(make([]int64, 1000), nulls)
	st, err := column.Analyze(data)
	require.NoError(t, err)

	payload, err := Null{}.Encode(data, st)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0x00, 0x03, 0xE8}, payload)
	require.Len(t, payload, 4)

	decoded, err := Null{}.Decode(payload, data.Logical(), st, 1000)
	require.NoError(t, err)
	require.Equal(t, 1000, decoded.Len())
	for i := 0; i < decoded.Len(); i++ {
		require.True(t, decoded.IsNull(i))
	}
}

func TestNullBoolAndString(t *testing.T) {
	boolData := column.NewBoolArray([]bool{false, false}, []bool{true, true})
	st, _ := column.Analyze(boolData)
	payload, err := Null{}.Encode(boolData, st)
	require.NoError(t, err)
	decoded, err := Null{}.Decode(payload, boolData.Logical(), st, 2)
	require.NoError(t, err)
	got := decoded.(column.BoolArray)
	require.Equal(t, column.BoolNull, got.Values[0])

	strData := column.StringArray{Values: []string{"", ""}, Null: []bool{true, true}}
	st, _ = column.Analyze(strData)
	payload, err = Null{}.Encode(strData, st)
	require.NoError(t, err)
	decoded, err = Null{}.Decode(payload, strData.Logical(), st, 2)
	require.NoError(t, err)
	require.True(t, decoded.IsNull(0))
}
