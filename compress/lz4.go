package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// Block markers. lz4 reports incompressible input by writing nothing, in which
// case the payload is stored verbatim after lz4Stored.
const (
	lz4Stored     byte = 0x00
	lz4Compressed byte = 0x01
)

// lz4MaxSize bounds the decompression buffer when the size is not known.
const lz4MaxSize = 128 * 1024 * 1024

// lz4MaxRatio bounds how far one LZ4 block can expand.
const lz4MaxRatio = 255

// LZ4Compressor compresses payloads as a single LZ4 block.
type LZ4Compressor struct{}

var (
	_ Codec             = (*LZ4Compressor)(nil)
	_ SizedDecompressor = (*LZ4Compressor)(nil)
)

// NewLZ4Compressor creates an LZ4 codec.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data with a pooled lz4.Compressor.
//
// The output starts with a one-byte marker telling Decompress whether the
// rest is an LZ4 block or the original bytes.
//
// Returns:
//   - []byte: marked block, nil for empty input
//   - error: compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, 1+lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[1:])
	if err != nil {
		return nil, err
	}

	if n == 0 || n >= len(data) {
		dst = append(dst[:0], lz4Stored)
		return append(dst, data...), nil
	}
	dst[0] = lz4Compressed

	return dst[:1+n], nil
}

// Decompress decodes a block produced by Compress.
//
// The decompressed size is not stored, so the buffer starts at four times
// the input and doubles on lz4.ErrInvalidSourceShortBuffer, up to 128 MiB.
// Use DecompressSized for larger payloads.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case lz4Stored:
		return append([]byte(nil), data[1:]...), nil
	case lz4Compressed:
	default:
		return nil, fmt.Errorf("lz4: unknown block marker 0x%02x", data[0])
	}

	block := data[1:]
	bufSize := max(len(block)*4, 64)
	for bufSize <= lz4MaxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(block, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxSize {
				bufSize *= 2
				continue
			}

			return nil, err
		}

		return buf[:n], nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}

// DecompressSized decodes a block produced by Compress into a buffer of
// exactly size bytes. Sizes an LZ4 block cannot expand to are rejected before
// allocating.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		if size != 0 {
			return nil, fmt.Errorf("lz4: empty block, want %d bytes", size)
		}

		return nil, nil
	}

	switch data[0] {
	case lz4Stored:
		if len(data)-1 != size {
			return nil, fmt.Errorf("lz4: stored block has %d bytes, want %d", len(data)-1, size)
		}

		return append([]byte(nil), data[1:]...), nil
	case lz4Compressed:
	default:
		return nil, fmt.Errorf("lz4: unknown block marker 0x%02x", data[0])
	}

	block := data[1:]
	if size < 0 || size > lz4MaxRatio*(len(block)+1) {
		return nil, fmt.Errorf("lz4: %d byte block cannot hold %d bytes", len(block), size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(block, buf)
	if err != nil {
		return nil, err
	}
	if n != size {
		return nil, fmt.Errorf("lz4: block holds %d bytes, want %d", n, size)
	}

	return buf, nil
}
