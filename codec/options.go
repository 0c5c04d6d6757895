package codec

import (
	"fmt"

	"github.com/arloliu/mensura/endian"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/format"
	"github.com/arloliu/mensura/internal/options"
)

type config struct {
	encoding    format.EncodingType
	compression format.CompressionType
	engine      endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		encoding:    format.TypeGorilla,
		compression: format.CompressionZstd,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option configures an encoder.
type Option = options.Option[*config]

// WithEncoding selects the value encoding. The default is format.TypeGorilla.
func WithEncoding(e format.EncodingType) Option {
	return options.New(func(c *config) error {
		if !e.Valid() {
			return fmt.Errorf("%w: unsupported encoding %d", errs.ErrInvalidOption, e)
		}
		c.encoding = e

		return nil
	})
}

// WithCompression selects the payload compression. The default is
// format.CompressionZstd.
func WithCompression(ct format.CompressionType) Option {
	return options.New(func(c *config) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: unsupported compression %d", errs.ErrInvalidOption, ct)
		}
		c.compression = ct

		return nil
	})
}

// WithByteOrder selects the byte order of header fields and raw values. The
// default is little-endian.
func WithByteOrder(engine endian.EndianEngine) Option {
	return options.New(func(c *config) error {
		if engine == nil {
			return fmt.Errorf("%w: nil byte order", errs.ErrInvalidOption)
		}
		c.engine = engine

		return nil
	})
}
