package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogicalTypeValid(t *testing.T) {
	require.True(t, Int32.Valid())
	require.True(t, Boolean.Valid())
	require.False(t, LogicalType(0).Valid())
	require.False(t, LogicalType(7).Valid())
}

func TestLogicalTypeString(t *testing.T) {
	require.Equal(t, "Int32", Int32.String())
	require.Equal(t, "Boolean", Boolean.String())
	require.Equal(t, "Unknown", LogicalType(99).String())
}

func TestCodecTagValid(t *testing.T) {
	require.True(t, CodecRaw.Valid())
	require.True(t, CodecNull.Valid())
	require.False(t, CodecTag(0).Valid())
	require.False(t, CodecTag(6).Valid())
}

func TestKindString(t *testing.T) {
	require.Equal(t, "Minimal", Minimal.String())
	require.Equal(t, "Compressed", Compressed.String())
	require.Equal(t, "Unknown", Kind(99).String())
}
