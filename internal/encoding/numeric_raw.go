package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/mensura/endian"
	"github.com/arloliu/mensura/internal/pool"
)

// NumericRawEncoder stores float64 values as fixed eight-byte words.
type NumericRawEncoder struct {
	engine endian.EndianEngine
	buf    *pool.ByteBuffer
	count  int
}

var _ ColumnarEncoder[float64] = (*NumericRawEncoder)(nil)

// NewNumericRawEncoder creates a raw encoder writing in the byte order of engine.
func NewNumericRawEncoder(engine endian.EndianEngine) *NumericRawEncoder {
	return &NumericRawEncoder{
		engine: engine,
		buf:    pool.GetPayloadBuffer(),
	}
}

// Write appends one value.
func (e *NumericRawEncoder) Write(value float64) {
	e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(value))
	e.count++
}

// WriteSlice appends values in order.
func (e *NumericRawEncoder) WriteSlice(values []float64) {
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v))
	}
	e.count += len(values)
}

// Bytes returns the encoded data.
func (e *NumericRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *NumericRawEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes.
func (e *NumericRawEncoder) Size() int {
	return e.buf.Len()
}

// Reset starts a new column.
func (e *NumericRawEncoder) Reset() {
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *NumericRawEncoder) Finish() {
	pool.PutPayloadBuffer(e.buf)
	e.buf = nil
	e.count = 0
}

// NumericRawDecoder reads values written by NumericRawEncoder.
type NumericRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = NumericRawDecoder{}

// NewNumericRawDecoder creates a raw decoder reading in the byte order of engine.
func NewNumericRawDecoder(engine endian.EndianEngine) NumericRawDecoder {
	return NumericRawDecoder{engine: engine}
}

// All yields up to count values from data.
func (d NumericRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		n := min(count, len(data)/8)
		for i := range n {
			if !yield(math.Float64frombits(d.engine.Uint64(data[i*8:]))) {
				return
			}
		}
	}
}

// ByteLength returns 8*count, or -1 when data is shorter.
func (d NumericRawDecoder) ByteLength(data []byte, count int) int {
	if count < 0 || len(data) < count*8 {
		return -1
	}

	return count * 8
}
