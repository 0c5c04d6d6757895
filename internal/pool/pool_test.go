package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer(t *testing.T) {
	bb := NewByteBuffer(4)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 4, bb.Cap())

	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, []byte("abc"), bb.Bytes())

	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100)
	require.Equal(t, []byte("abc"), bb.Bytes(), "Grow keeps contents")

	var out bytes.Buffer
	written, err := bb.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(3), written)
	require.Equal(t, "abc", out.String())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 103)
}

func TestByteBuffer_GrowNoop(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()
	bb.Grow(10)
	require.Equal(t, before, bb.Cap())
}

func TestByteBufferPool(t *testing.T) {
	p := NewByteBufferPool(8, 32)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("data"))
	p.Put(bb)
	p.Put(nil)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers come back empty")

	big := NewByteBuffer(64)
	p.Put(big)
}

func TestPayloadBuffer(t *testing.T) {
	bb := GetPayloadBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), PayloadBufferDefaultSize)
	PutPayloadBuffer(bb)
}

func TestGetFloat64Slice(t *testing.T) {
	s, cleanup := GetFloat64Slice(10)
	require.Len(t, s, 10)
	for i := range s {
		s[i] = float64(i)
	}
	cleanup()

	small, cleanup := GetFloat64Slice(3)
	defer cleanup()
	require.Len(t, small, 3)

	empty, cleanupEmpty := GetFloat64Slice(0)
	defer cleanupEmpty()
	require.Empty(t, empty)
}
