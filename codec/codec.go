package codec

import (
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/compress"
	"github.com/arloliu/mensura/endian"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/format"
	"github.com/arloliu/mensura/internal/encoding"
	"github.com/arloliu/mensura/internal/options"
	"github.com/arloliu/mensura/internal/pool"
	"github.com/arloliu/mensura/quantity"
)

// Encode serializes affine quantities sharing one unit.
//
// Parameters:
//   - qs: quantities to encode, all expressed in the same unit
//   - opts: encoding, compression and byte order options
//
// Returns:
//   - []byte: the encoded blob
//   - error: ErrInvalidOption, ErrUnitMismatch if qs mixes units, or
//     ErrTooManyQuantities if the batch does not fit the header
func Encode[C catalog.Category, V quantity.Vector](qs []quantity.Affine[C, V], opts ...Option) ([]byte, error) {
	var unit *catalog.Unit[C]
	if len(qs) > 0 {
		unit = qs[0].Unit()
		for i := range qs {
			if !qs[i].Unit().Equal(unit) {
				return nil, fmt.Errorf("%w: element %d is %s, want %s", errs.ErrUnitMismatch, i, qs[i].Unit(), unit)
			}
		}
	}

	return encode(format.KindAffine, unit, len(qs), func(i int) V { return qs[i].Vector() }, opts)
}

// EncodeDiffs serializes differences sharing one unit. It behaves like Encode.
func EncodeDiffs[C catalog.Category, V quantity.Vector](ds []quantity.Diff[C, V], opts ...Option) ([]byte, error) {
	var unit *catalog.Unit[C]
	if len(ds) > 0 {
		unit = ds[0].Unit()
		for i := range ds {
			if !ds[i].Unit().Equal(unit) {
				return nil, fmt.Errorf("%w: element %d is %s, want %s", errs.ErrUnitMismatch, i, ds[i].Unit(), unit)
			}
		}
	}

	return encode(format.KindDiff, unit, len(ds), func(i int) V { return ds[i].Vector() }, opts)
}

// Decode restores affine quantities from a blob produced by Encode.
//
// Parameters:
//   - m: measurement the encoded unit belongs to
//   - data: encoded blob; bytes after the payload are ignored
//
// Returns:
//   - []quantity.Affine[C, V]: decoded quantities, empty for an empty blob
//   - error: header errors from ParseHeader, ErrKindMismatch, ErrRankMismatch,
//     ErrUnknownUnit, ErrChecksumMismatch or ErrInvalidPayload
func Decode[C catalog.Category, V quantity.Vector](m *catalog.Measurement[C], data []byte) ([]quantity.Affine[C, V], error) {
	unit, vecs, err := decode[C, V](m, data, format.KindAffine)
	if err != nil {
		return nil, err
	}

	out := make([]quantity.Affine[C, V], len(vecs))
	for i, v := range vecs {
		out[i] = quantity.NewAffine(unit, v)
	}

	return out, nil
}

// DecodeDiffs restores differences from a blob produced by EncodeDiffs. It
// behaves like Decode.
func DecodeDiffs[C catalog.Category, V quantity.Vector](m *catalog.Measurement[C], data []byte) ([]quantity.Diff[C, V], error) {
	unit, vecs, err := decode[C, V](m, data, format.KindDiff)
	if err != nil {
		return nil, err
	}

	out := make([]quantity.Diff[C, V], len(vecs))
	for i, v := range vecs {
		out[i] = quantity.NewDiff(unit, v)
	}

	return out, nil
}

func encode[C catalog.Category, V quantity.Vector](kind format.Kind, unit *catalog.Unit[C], n int, at func(int) V, opts []Option) ([]byte, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", errs.ErrTooManyQuantities, n)
	}

	rank := quantity.Rank[V]()
	h := Header{
		Flag:  NewFlag(cfg.encoding, cfg.compression),
		Rank:  uint8(rank),
		Count: uint32(n),
	}
	h.Flag.SetKind(kind)
	h.Flag.SetBigEndian(endian.IsBigEndian(cfg.engine))
	if n == 0 {
		return h.Bytes(), nil
	}
	h.UnitID = unit.ID()

	enc := newColumnEncoder(cfg)
	defer enc.Finish()

	column, cleanup := pool.GetFloat64Slice(n)
	defer cleanup()
	for c := 0; c < rank; c++ {
		for i := range n {
			column[i] = at(i)[c]
		}
		enc.WriteSlice(column)
		enc.Reset()
	}
	raw := enc.Bytes()

	comp, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	payload, err := comp.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("compress payload: %w", err)
	}
	if uint64(len(raw)) > math.MaxUint32 || uint64(len(payload)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrTooManyQuantities, len(raw))
	}

	h.RawSize = uint32(len(raw))
	h.PayloadSize = uint32(len(payload))
	h.Checksum = crc32.ChecksumIEEE(payload)

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, h.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

func decode[C catalog.Category, V quantity.Vector](m *catalog.Measurement[C], data []byte, kind format.Kind) (*catalog.Unit[C], []V, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	if h.Flag.Kind() != kind {
		return nil, nil, fmt.Errorf("%w: blob holds %s, want %s", errs.ErrKindMismatch, h.Flag.Kind(), kind)
	}
	rank := quantity.Rank[V]()
	if int(h.Rank) != rank {
		return nil, nil, fmt.Errorf("%w: blob has rank %d, want %d", errs.ErrRankMismatch, h.Rank, rank)
	}
	if h.Count == 0 {
		return m.Base(), []V{}, nil
	}

	unit, ok := m.UnitByID(h.UnitID)
	if !ok {
		return nil, nil, fmt.Errorf("%w: id %#x in %s", errs.ErrUnknownUnit, h.UnitID, m.Name())
	}

	if len(data) < h.BlobSize() {
		return nil, nil, fmt.Errorf("%w: need %d bytes, got %d", errs.ErrInvalidPayload, h.BlobSize(), len(data))
	}
	stored := data[HeaderSize:h.BlobSize()]
	if sum := crc32.ChecksumIEEE(stored); sum != h.Checksum {
		return nil, nil, fmt.Errorf("%w: got %#08x, want %#08x", errs.ErrChecksumMismatch, sum, h.Checksum)
	}

	if err := checkSizes(h, rank); err != nil {
		return nil, nil, err
	}

	comp, err := compress.GetCodec(h.Flag.CompressionType)
	if err != nil {
		return nil, nil, err
	}
	raw, err := compress.DecompressSized(comp, stored, int(h.RawSize))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", errs.ErrInvalidPayload, err)
	}
	if len(raw) != int(h.RawSize) {
		return nil, nil, fmt.Errorf("%w: raw size %d, want %d", errs.ErrInvalidPayload, len(raw), h.RawSize)
	}

	count := int(h.Count)
	dec := newColumnDecoder(h)
	vecs := make([]V, count)
	off := 0
	for c := 0; c < rank; c++ {
		size := dec.ByteLength(raw[off:], count)
		if size < 0 {
			return nil, nil, fmt.Errorf("%w: column %d truncated", errs.ErrInvalidPayload, c)
		}

		i := 0
		for v := range dec.All(raw[off:off+size], count) {
			vecs[i][c] = v
			i++
		}
		if i != count {
			return nil, nil, fmt.Errorf("%w: column %d has %d values, want %d", errs.ErrInvalidPayload, c, i, count)
		}
		off += size
	}
	if off != len(raw) {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes", errs.ErrInvalidPayload, len(raw)-off)
	}

	return unit, vecs, nil
}

// checkSizes rejects headers whose count cannot be stored in RawSize bytes,
// so the allocation in decode is bounded by the payload.
func checkSizes(h Header, rank int) error {
	count, rawSize := uint64(h.Count), uint64(h.RawSize)

	if h.Flag.EncodingType == format.TypeRaw {
		if want := uint64(rank) * count * 8; rawSize != want {
			return fmt.Errorf("%w: raw size %d, want %d for %d values", errs.ErrInvalidPayload, rawSize, want, count)
		}
	} else {
		// a gorilla column holds 64 bits for its first value and at least one
		// bit for each following value
		if need := uint64(rank) * (63 + count); rawSize*8 < need {
			return fmt.Errorf("%w: %d raw bytes cannot hold %d values", errs.ErrInvalidPayload, rawSize, count)
		}
	}

	if h.Flag.CompressionType == format.CompressionNone && h.RawSize != h.PayloadSize {
		return fmt.Errorf("%w: raw size %d, payload size %d", errs.ErrInvalidPayload, h.RawSize, h.PayloadSize)
	}

	return nil
}

func newColumnEncoder(cfg *config) encoding.ColumnarEncoder[float64] {
	if cfg.encoding == format.TypeRaw {
		return encoding.NewNumericRawEncoder(cfg.engine)
	}

	return encoding.NewNumericGorillaEncoder()
}

func newColumnDecoder(h Header) encoding.ColumnarDecoder[float64] {
	if h.Flag.EncodingType == format.TypeRaw {
		return encoding.NewNumericRawDecoder(h.Flag.Engine())
	}

	return encoding.NewNumericGorillaDecoder()
}
