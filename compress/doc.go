// Package compress provides the compression codecs applied to encoded quantity
// payloads.
//
// Compression is the second stage of the codec pipeline: values are first laid
// out column by column and optionally Gorilla-encoded, then the resulting
// payload is compressed as a whole.
//
// # Algorithms
//
//   - None (format.CompressionNone): payload stored as is. Fastest, largest.
//   - Zstd (format.CompressionZstd): best ratio. Pure Go (klauspost/compress)
//     by default; built with the gozstd tag and cgo enabled it uses
//     valyala/gozstd instead. Both produce standard zstd frames.
//   - S2 (format.CompressionS2): Snappy-compatible, balanced speed and ratio.
//   - LZ4 (format.CompressionLZ4): fastest decompression.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and
// are safe for concurrent use.
package compress
