package encoding

import "encoding/binary"

// bitWriter packs bits most significant first into 64-bit words.
type bitWriter struct {
	acc uint64
	n   int
}

// writeBits appends the low nbits of v to dst, spilling full words.
func (w *bitWriter) writeBits(dst []byte, v uint64, nbits int) []byte {
	for nbits > 0 {
		take := min(nbits, 64-w.n)
		chunk := (v >> (nbits - take)) & lowMask(take)
		if take == 64 {
			w.acc = chunk
		} else {
			w.acc = w.acc<<take | chunk
		}
		w.n += take
		nbits -= take

		if w.n == 64 {
			dst = binary.BigEndian.AppendUint64(dst, w.acc)
			w.acc, w.n = 0, 0
		}
	}

	return dst
}

// flush appends the pending bits padded with zeros to a whole byte.
func (w *bitWriter) flush(dst []byte) []byte {
	if w.n == 0 {
		return dst
	}

	word := w.acc << (64 - w.n)
	nbytes := (w.n + 7) / 8
	for i := range nbytes {
		dst = append(dst, byte(word>>(56-8*i)))
	}
	w.acc, w.n = 0, 0

	return dst
}

func lowMask(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << n) - 1
}

// bitReader reads bits most significant first.
type bitReader struct {
	data []byte
	pos  int
}

func (r *bitReader) readBits(nbits int) (uint64, bool) {
	if nbits < 0 || r.pos+nbits > len(r.data)*8 {
		return 0, false
	}

	var v uint64
	for nbits > 0 {
		bitOff := r.pos & 7
		avail := 8 - bitOff
		take := min(avail, nbits)
		b := (uint64(r.data[r.pos>>3]) >> (avail - take)) & lowMask(take)
		v = v<<take | b
		r.pos += take
		nbits -= take
	}

	return v, true
}

func (r *bitReader) readBit() (bool, bool) {
	v, ok := r.readBits(1)
	return v == 1, ok
}

// bytesRead returns the number of whole bytes touched so far.
func (r *bitReader) bytesRead() int {
	return (r.pos + 7) / 8
}
