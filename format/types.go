// Package format defines the identifiers written into encoded quantity blobs.
package format

type (
	// EncodingType selects how component columns are laid out in a blob payload.
	EncodingType uint8
	// CompressionType selects the codec applied to a blob payload.
	CompressionType uint8
	// Kind tells whether a blob carries affine points or differences.
	Kind uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores every component as an eight-byte word.
	TypeGorilla EncodingType = 0x3 // TypeGorilla stores components with XOR compression.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	KindAffine Kind = 0x0 // KindAffine marks a blob of affine quantities.
	KindDiff   Kind = 0x1 // KindDiff marks a blob of differences.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeGorilla:
		return "Gorilla"
	default:
		return "Unknown"
	}
}

// Valid reports whether e is a known encoding.
func (e EncodingType) Valid() bool {
	return e == TypeRaw || e == TypeGorilla
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression.
func (c CompressionType) Valid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

func (k Kind) String() string {
	switch k {
	case KindAffine:
		return "Affine"
	case KindDiff:
		return "Diff"
	default:
		return "Unknown"
	}
}
