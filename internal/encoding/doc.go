// Package encoding implements the value encodings of quantity payloads.
//
// A payload is a sequence of float64 columns, one per vector component. Each
// column is written with one of two encodings:
//
//   - Raw (format.TypeRaw): eight bytes per value in the configured byte order.
//   - Gorilla (format.TypeGorilla): XOR compression of consecutive values, which
//     shrinks slowly varying readings to a few bits each.
//
// Encoders append to pooled buffers and implement ColumnarEncoder; decoders are
// stateless values implementing ColumnarDecoder.
package encoding
