package encoding

import "iter"

// ColumnarEncoder appends values of one column to an internal buffer.
type ColumnarEncoder[T any] interface {
	// Write encodes a single value.
	Write(value T)
	// WriteSlice encodes values in order.
	WriteSlice(values []T)
	// Bytes returns the encoded data. The slice is valid until the next call
	// to Write, WriteSlice, Reset or Finish and must not be modified.
	Bytes() []byte
	// Len returns the number of values written since the last Reset.
	Len() int
	// Size returns the number of encoded bytes.
	Size() int
	// Reset starts a new column, keeping already encoded bytes.
	Reset()
	// Finish releases the internal buffer. The encoder must not be used
	// afterwards.
	Finish()
}

// ColumnarDecoder reads values of one column.
type ColumnarDecoder[T any] interface {
	// All yields up to count values decoded from data. It yields fewer
	// values when data is truncated or malformed.
	All(data []byte, count int) iter.Seq[T]
	// ByteLength returns the number of bytes count values occupy at the
	// start of data, or -1 when data is too short.
	ByteLength(data []byte, count int) int
}
