package encoding

import (
	"iter"
	"math"
	"math/bits"

	"github.com/arloliu/mensura/internal/pool"
)

// NumericGorillaEncoder compresses float64 columns with the Gorilla XOR scheme.
//
// The first value of a column is stored in 64 bits. Each following value is
// XORed with its predecessor:
//   - XOR zero: a single 0 bit.
//   - Meaningful bits fit the previous window: bits 10 followed by the bits
//     inside that window.
//   - Otherwise: bits 11, 5 bits of leading zeros, 6 bits of window length
//     (64 stored as 0) and the meaningful bits.
//
// Columns are padded to a byte boundary so that each one can be decoded on
// its own.
//
// See https://www.vldb.org/pvldb/vol8/p1816-teller.pdf for the algorithm.
type NumericGorillaEncoder struct {
	w            bitWriter
	prev         uint64
	prevLeading  int
	prevTrailing int
	count        int
	first        bool
	buf          *pool.ByteBuffer
}

var _ ColumnarEncoder[float64] = (*NumericGorillaEncoder)(nil)

// NewNumericGorillaEncoder creates a Gorilla encoder.
func NewNumericGorillaEncoder() *NumericGorillaEncoder {
	return &NumericGorillaEncoder{
		buf:         pool.GetPayloadBuffer(),
		first:       true,
		prevLeading: -1,
	}
}

// Write encodes one value.
func (e *NumericGorillaEncoder) Write(value float64) {
	e.writeValue(math.Float64bits(value))
	e.count++
}

// WriteSlice encodes values in order.
func (e *NumericGorillaEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.writeValue(math.Float64bits(v))
	}
	e.count += len(values)
}

// Bytes ends the current column and returns all encoded data. A following
// Write starts a new column.
func (e *NumericGorillaEncoder) Bytes() []byte {
	e.endColumn()
	return e.buf.Bytes()
}

// Len returns the number of values written since the last Reset.
func (e *NumericGorillaEncoder) Len() int {
	return e.count
}

// Size returns the number of encoded bytes, counting a partially filled
// final byte.
func (e *NumericGorillaEncoder) Size() int {
	return e.buf.Len() + (e.w.n+7)/8
}

// Reset ends the current column.
func (e *NumericGorillaEncoder) Reset() {
	e.endColumn()
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *NumericGorillaEncoder) Finish() {
	pool.PutPayloadBuffer(e.buf)
	e.buf = nil
	e.w = bitWriter{}
	e.count = 0
}

func (e *NumericGorillaEncoder) endColumn() {
	e.buf.B = e.w.flush(e.buf.B)
	e.first = true
	e.prevLeading = -1
	e.prevTrailing = 0
}

func (e *NumericGorillaEncoder) writeValue(v uint64) {
	if e.first {
		e.buf.B = e.w.writeBits(e.buf.B, v, 64)
		e.prev = v
		e.first = false

		return
	}

	xor := v ^ e.prev
	e.prev = v
	if xor == 0 {
		e.buf.B = e.w.writeBits(e.buf.B, 0, 1)
		return
	}

	leading := min(bits.LeadingZeros64(xor), 31)
	trailing := bits.TrailingZeros64(xor)

	if e.prevLeading >= 0 && leading >= e.prevLeading && trailing >= e.prevTrailing {
		size := 64 - e.prevLeading - e.prevTrailing
		e.buf.B = e.w.writeBits(e.buf.B, 0b10, 2)
		e.buf.B = e.w.writeBits(e.buf.B, xor>>e.prevTrailing, size)

		return
	}

	size := 64 - leading - trailing
	e.buf.B = e.w.writeBits(e.buf.B, 0b11, 2)
	e.buf.B = e.w.writeBits(e.buf.B, uint64(leading), 5)
	e.buf.B = e.w.writeBits(e.buf.B, uint64(size&63), 6)
	e.buf.B = e.w.writeBits(e.buf.B, xor>>trailing, size)
	e.prevLeading = leading
	e.prevTrailing = trailing
}

// NumericGorillaDecoder reads columns written by NumericGorillaEncoder.
type NumericGorillaDecoder struct{}

var _ ColumnarDecoder[float64] = NumericGorillaDecoder{}

// NewNumericGorillaDecoder creates a Gorilla decoder.
func NewNumericGorillaDecoder() NumericGorillaDecoder {
	return NumericGorillaDecoder{}
}

// All yields up to count values of the column at the start of data.
func (d NumericGorillaDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		r := bitReader{data: data}
		_ = decodeGorilla(&r, count, yield)
	}
}

// ByteLength returns the byte size of the column of count values at the start
// of data, or -1 when data is truncated.
func (d NumericGorillaDecoder) ByteLength(data []byte, count int) int {
	r := bitReader{data: data}
	if !decodeGorilla(&r, count, func(float64) bool { return true }) {
		return -1
	}

	return r.bytesRead()
}

// decodeGorilla reads count values and reports whether all were present.
func decodeGorilla(r *bitReader, count int, yield func(float64) bool) bool {
	if count <= 0 {
		return count == 0
	}

	prev, ok := r.readBits(64)
	if !ok {
		return false
	}
	if !yield(math.Float64frombits(prev)) {
		return true
	}

	leading, trailing := 0, 0
	for i := 1; i < count; i++ {
		changed, ok := r.readBit()
		if !ok {
			return false
		}

		if changed {
			newWindow, ok := r.readBit()
			if !ok {
				return false
			}

			if newWindow {
				l, ok := r.readBits(5)
				if !ok {
					return false
				}
				s, ok := r.readBits(6)
				if !ok {
					return false
				}
				size := int(s)
				if size == 0 {
					size = 64
				}
				leading = int(l)
				trailing = 64 - leading - size
				if trailing < 0 {
					return false
				}
			}

			size := 64 - leading - trailing
			m, ok := r.readBits(size)
			if !ok {
				return false
			}
			prev ^= m << trailing
		}

		if !yield(math.Float64frombits(prev)) {
			return true
		}
	}

	return true
}
