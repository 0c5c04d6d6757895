package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingType(t *testing.T) {
	require.Equal(t, "Raw", TypeRaw.String())
	require.Equal(t, "Gorilla", TypeGorilla.String())
	require.Equal(t, "Unknown", EncodingType(0x2).String())

	require.True(t, TypeRaw.Valid())
	require.True(t, TypeGorilla.Valid())
	require.False(t, EncodingType(0).Valid())
	require.False(t, EncodingType(0x2).Valid())
}

func TestCompressionType(t *testing.T) {
	cases := map[CompressionType]string{
		CompressionNone: "None",
		CompressionZstd: "Zstd",
		CompressionS2:   "S2",
		CompressionLZ4:  "LZ4",
	}
	for c, name := range cases {
		require.Equal(t, name, c.String())
		require.True(t, c.Valid())
	}

	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(5).Valid())
	require.Equal(t, "Unknown", CompressionType(5).String())
}

func TestKind(t *testing.T) {
	require.Equal(t, "Affine", KindAffine.String())
	require.Equal(t, "Diff", KindDiff.String())
	require.Equal(t, "Unknown", Kind(7).String())
}
