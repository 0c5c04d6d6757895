package compress

import (
	"fmt"

	"github.com/arloliu/mensura/format"
)

// Compressor compresses an encoded payload.
type Compressor interface {
	// Compress returns the compressed form of data.
	//
	// The returned slice is owned by the caller and data is not modified. An
	// empty input may produce an empty output.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original payload.
	//
	// It returns an error if data is corrupted or was produced by another
	// algorithm. The returned slice is owned by the caller.
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is implemented by codecs that decompress into a buffer of
// a size known in advance.
type SizedDecompressor interface {
	// DecompressSized returns the original payload, which must be exactly
	// size bytes long.
	DecompressSized(data []byte, size int) ([]byte, error)
}

// DecompressSized decompresses data with d. The expected size is passed on
// when d implements SizedDecompressor; other codecs ignore it.
func DecompressSized(d Decompressor, data []byte, size int) ([]byte, error) {
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSized(data, size)
	}

	return d.Decompress(data)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in codec for compressionType.
//
// Parameters:
//   - compressionType: one of the format.Compression* constants
//
// Returns:
//   - Codec: shared, stateless codec instance
//   - error: unsupported compression type
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
