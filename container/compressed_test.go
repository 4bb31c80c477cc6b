package container

import (
	"testing"

	"github.com/hybfio/hybf/column"
	"github.com/hybfio/hybf/errs"
	"github.com/hybfio/hybf/format"
	"github.com/hybfio/hybf/internal/bitio"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCompressedMultiColumn(t *testing.T) {
	defs := []column.Type{
		{Name: "dup", Logical: format.Int32, Storage: column.StorageType{Base: format.Int32, BitWidth: 8}},
		{Name: "n", Logical: format.Float64, Storage: column.StorageType{Base: format.Float64, BitWidth: 64}},
	}
	nulls := []bool{true, true, true, true}
	data := []column.Array{
		column.Int32Array{Values: []int32{7, 7, 7, 7}},
		column.NewFloat64ArrayFromInts(make([]int64, 4), nulls),
	}

	w := bitio.NewWriter(64)
	require.NoError(t, encodeCompressed(w, defs, data, 4))

	r := bitio.NewReader(w.Bytes())
	kind, colCount, err := readHeader(r)
	require.NoError(t, err)
	require.Equal(t, format.Compressed, kind)

	rowCount, err := r.ReadU32()
	require.NoError(t, err)

	readDefs, err := readColumnDefs(r, colCount)
	require.NoError(t, err)

	arrays, err := decodeCompressed(r, readDefs, rowCount)
	require.NoError(t, err)
	require.Equal(t, []int32{7, 7, 7, 7}, arrays[0].(column.Int32Array).Values)
	for i := 0; i < 4; i++ {
		require.True(t, arrays[1].IsNull(i))
	}
}

func TestDecodeCompressedRejectsUnknownCodecButSkipsPayload(t *testing.T) {
	defs := []column.Type{
		{Name: "v", Logical: format.Int32, Storage: column.StorageType{Base: format.Int32, BitWidth: 8}},
	}

	w := bitio.NewWriter(16)
	w.WriteU8(0x7F) // unrecognised codec tag
	w.WriteU32(3)
	w.WriteBytes([]byte{1, 2, 3})

	r := bitio.NewReader(w.Bytes())
	_, err := decodeCompressed(r, defs, 3)
	require.ErrorIs(t, err, errs.ErrUnknownCodec)
	require.Equal(t, 8, r.Pos())
}
