// Package errs defines the sentinel errors returned by mensura packages.
//
// Errors are wrapped with additional context using fmt.Errorf and the %w verb,
// so callers should match them with errors.Is:
//
//	if _, err := reg.Register("Length", 'L'); errors.Is(err, errs.ErrDuplicateDimension) {
//	    // handle duplicate
//	}
package errs

import "errors"

// Registration errors. They indicate a programming or configuration error in
// a catalog definition and are fatal for static catalogs.
var (
	// ErrInvalidSymbol is returned when a dimension symbol is not a letter or digit.
	ErrInvalidSymbol = errors.New("dimension symbol must be a letter or digit")
	// ErrEmptyTextID is returned when a dimension text id is empty or whitespace.
	ErrEmptyTextID = errors.New("dimension text id must contain data")
	// ErrDuplicateDimension is returned when a dimension symbol or text id is already registered.
	ErrDuplicateDimension = errors.New("duplicate dimension key")
	// ErrUnknownDimension is returned when an exponent vector references an unregistered symbol.
	ErrUnknownDimension = errors.New("unknown dimension")
	// ErrRegistryFrozen is returned when registering into a frozen dimension registry.
	ErrRegistryFrozen = errors.New("dimension registry is frozen")

	// ErrEmptyCategoryName is returned when a measurement category has no name.
	ErrEmptyCategoryName = errors.New("measurement category name must not be empty")
	// ErrDuplicateCategory is returned when a category name or marker type is defined twice.
	ErrDuplicateCategory = errors.New("duplicate measurement category")
	// ErrEmptyUnitName is returned when a unit has no name.
	ErrEmptyUnitName = errors.New("unit name must not be empty")
	// ErrDuplicateUnit is returned when a unit name or symbol already exists in its category.
	ErrDuplicateUnit = errors.New("duplicate unit")
	// ErrSingularTransform is returned when a unit's to-base transform cannot be inverted.
	ErrSingularTransform = errors.New("singular transform")
	// ErrHashCollision is returned when two units hash to the same identifier.
	ErrHashCollision = errors.New("unit id hash collision")
	// ErrCatalogFrozen is returned when defining into a catalog that was already built.
	ErrCatalogFrozen = errors.New("catalog is frozen")
)

// Lookup and arithmetic errors.
var (
	// ErrUnknownUnit is returned when a unit name, symbol or id cannot be resolved.
	ErrUnknownUnit = errors.New("unknown unit")
	// ErrAmbiguousUnit is returned when a symbol resolves to units of several categories.
	ErrAmbiguousUnit = errors.New("ambiguous unit")
	// ErrUnknownCategory is returned when a measurement category cannot be resolved.
	ErrUnknownCategory = errors.New("unknown measurement category")
	// ErrDimensionMismatch is returned when operands belong to different measurement categories.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrUnitMismatch is returned when a batch mixes source units.
	ErrUnitMismatch = errors.New("unit mismatch")
	// ErrInvalidQuantity is returned when a textual quantity cannot be parsed.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidOption is returned when a configuration option has an invalid value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrInvalidSeed is returned when a seed document cannot be decoded.
	ErrInvalidSeed = errors.New("invalid seed document")
)

// Codec errors.
var (
	// ErrInvalidHeaderSize is returned when the encoded header is truncated.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidHeaderFlags is returned when the header magic or flags are not recognized.
	ErrInvalidHeaderFlags = errors.New("invalid header flags")
	// ErrRankMismatch is returned when decoding into a vector type of a different rank.
	ErrRankMismatch = errors.New("rank mismatch")
	// ErrKindMismatch is returned when decoding affine data as differences or vice versa.
	ErrKindMismatch = errors.New("quantity kind mismatch")
	// ErrChecksumMismatch is returned when the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrInvalidPayload is returned when the payload cannot be decoded.
	ErrInvalidPayload = errors.New("invalid payload")
	// ErrTooManyQuantities is returned when a batch exceeds the encodable count.
	ErrTooManyQuantities = errors.New("too many quantities")
)
