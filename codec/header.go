package codec

import (
	"fmt"

	"github.com/arloliu/mensura/endian"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/format"
)

const (
	// HeaderSize is the fixed size of a blob header in bytes.
	HeaderSize = 32

	// MagicQuantityV1 identifies the first blob format version.
	MagicQuantityV1 uint16 = 0xC710

	kindMask       uint16 = 0x0001
	endiannessMask uint16 = 0x0002
	reservedMask   uint16 = 0x000C
	magicMask      uint16 = 0xFFF0
)

// Flag is the packed first word of the header plus the encoding bytes.
type Flag struct {
	// Options holds the magic number, the endianness bit and the kind bit.
	Options uint16
	// EncodingType is the value encoding of every column.
	EncodingType format.EncodingType
	// CompressionType is the compression of the whole payload.
	CompressionType format.CompressionType
}

// NewFlag returns a flag for little-endian affine data.
func NewFlag(encoding format.EncodingType, compression format.CompressionType) Flag {
	return Flag{
		Options:         MagicQuantityV1,
		EncodingType:    encoding,
		CompressionType: compression,
	}
}

// Kind returns whether the blob holds affine quantities or differences.
func (f Flag) Kind() format.Kind {
	return format.Kind(f.Options & kindMask)
}

// SetKind records the quantity kind.
func (f *Flag) SetKind(k format.Kind) {
	f.Options = f.Options&^kindMask | uint16(k)&kindMask
}

// IsBigEndian returns whether header fields and raw values are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&endiannessMask != 0
}

// SetBigEndian selects big-endian (true) or little-endian (false) byte order.
func (f *Flag) SetBigEndian(big bool) {
	if big {
		f.Options |= endiannessMask
	} else {
		f.Options &^= endiannessMask
	}
}

// Engine returns the byte order engine selected by the flag.
func (f Flag) Engine() endian.EndianEngine {
	return endian.EngineFor(f.IsBigEndian())
}

// Magic returns the magic number bits of Options.
func (f Flag) Magic() uint16 {
	return f.Options & magicMask
}

// Validate checks the magic number, reserved bits and enum values.
func (f Flag) Validate() error {
	if f.Magic() != MagicQuantityV1 {
		return fmt.Errorf("%w: magic %#04x", errs.ErrInvalidHeaderFlags, f.Magic())
	}
	if f.Options&reservedMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}
	if !f.EncodingType.Valid() {
		return fmt.Errorf("%w: encoding %d", errs.ErrInvalidHeaderFlags, f.EncodingType)
	}
	if !f.CompressionType.Valid() {
		return fmt.Errorf("%w: compression %d", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}

// Header is the fixed-size section at the start of every blob.
type Header struct {
	Flag Flag // byte offset 0-3
	// Rank is the number of components per quantity.
	Rank uint8 // byte offset 4
	// UnitID identifies the unit within its measurement, see catalog.Unit.ID.
	UnitID uint64 // byte offset 8-15
	// Count is the number of quantities.
	Count uint32 // byte offset 16-19
	// PayloadSize is the number of payload bytes following the header.
	PayloadSize uint32 // byte offset 20-23
	// RawSize is the payload size before compression.
	RawSize uint32 // byte offset 24-27
	// Checksum is the CRC-32 of the stored payload.
	Checksum uint32 // byte offset 28-31
}

// BlobSize returns the total size of the blob described by h.
func (h Header) BlobSize() int {
	return HeaderSize + int(h.PayloadSize)
}

// Bytes serializes the header.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := h.Flag.Engine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = byte(h.Flag.EncodingType)
	b[3] = byte(h.Flag.CompressionType)
	b[4] = h.Rank
	engine.PutUint64(b[8:16], h.UnitID)
	engine.PutUint32(b[16:20], h.Count)
	engine.PutUint32(b[20:24], h.PayloadSize)
	engine.PutUint32(b[24:28], h.RawSize)
	engine.PutUint32(b[28:32], h.Checksum)

	return b
}

// ParseHeader parses the header at the start of data.
//
// Parameters:
//   - data: encoded blob, at least HeaderSize bytes
//
// Returns:
//   - Header: the parsed header
//   - error: ErrInvalidHeaderSize if data is too short, ErrInvalidHeaderFlags
//     if the magic number, reserved bits, encoding or compression is unknown
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d bytes", errs.ErrInvalidHeaderSize, len(data))
	}

	var h Header
	h.Flag.Options = uint16(data[0]) | uint16(data[1])<<8
	h.Flag.EncodingType = format.EncodingType(data[2])
	h.Flag.CompressionType = format.CompressionType(data[3])
	if err := h.Flag.Validate(); err != nil {
		return Header{}, err
	}

	engine := h.Flag.Engine()
	h.Rank = data[4]
	h.UnitID = engine.Uint64(data[8:16])
	h.Count = engine.Uint32(data[16:20])
	h.PayloadSize = engine.Uint32(data[20:24])
	h.RawSize = engine.Uint32(data[24:28])
	h.Checksum = engine.Uint32(data[28:32])

	return h, nil
}
