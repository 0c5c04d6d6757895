package dimension

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/fold"
)

// Dimension is a base physical axis. It is a comparable value type.
type Dimension struct {
	textID string
	symbol rune
}

// TextID returns the text id the dimension was registered with.
func (d Dimension) TextID() string {
	return d.textID
}

// Symbol returns the upper-case symbol of the dimension.
func (d Dimension) Symbol() rune {
	return d.symbol
}

// IsZero reports whether d is the zero Dimension.
func (d Dimension) IsZero() bool {
	return d.symbol == 0 && d.textID == ""
}

func (d Dimension) String() string {
	return fmt.Sprintf("%s(%c)", d.textID, d.symbol)
}

// Registry is an append-only table of dimensions keyed by symbol and by
// case-insensitive text id.
//
// Registration is not safe for concurrent use. Once registration is complete
// (typically after Freeze), lookups may be performed concurrently as long as
// the registration happens-before them.
type Registry struct {
	bySymbol map[rune]Dimension
	byTextID map[string]Dimension
	order    []Dimension
	frozen   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		bySymbol: make(map[rune]Dimension),
		byTextID: make(map[string]Dimension),
	}
}

// Register adds a dimension.
//
// The symbol is upper-cased before validation and must be a letter or a digit.
// The text id must contain at least one non-space character.
//
// Returns:
//   - Dimension: the registered dimension
//   - error: ErrInvalidSymbol, ErrEmptyTextID, ErrDuplicateDimension when the
//     symbol or the text id (compared case-insensitively) is already taken, or
//     ErrRegistryFrozen
func (r *Registry) Register(textID string, symbol rune) (Dimension, error) {
	if r.frozen {
		return Dimension{}, fmt.Errorf("%w: cannot register %q", errs.ErrRegistryFrozen, textID)
	}

	symbol = unicode.ToUpper(symbol)
	if !unicode.IsLetter(symbol) && !unicode.IsDigit(symbol) {
		return Dimension{}, fmt.Errorf("%w: %q", errs.ErrInvalidSymbol, symbol)
	}

	if strings.TrimSpace(textID) == "" {
		return Dimension{}, errs.ErrEmptyTextID
	}

	key := fold.Key(textID)
	if existing, ok := r.byTextID[key]; ok {
		return Dimension{}, fmt.Errorf("%w: text id %q already registered as %s", errs.ErrDuplicateDimension, textID, existing)
	}

	if existing, ok := r.bySymbol[symbol]; ok {
		return Dimension{}, fmt.Errorf("%w: symbol %q already registered as %s", errs.ErrDuplicateDimension, symbol, existing)
	}

	d := Dimension{textID: textID, symbol: symbol}
	r.bySymbol[symbol] = d
	r.byTextID[key] = d
	r.order = append(r.order, d)

	return d, nil
}

// MustRegister is like Register but panics on error. It is intended for static
// catalog definitions where a registration error is a programming error.
func (r *Registry) MustRegister(textID string, symbol rune) Dimension {
	d, err := r.Register(textID, symbol)
	if err != nil {
		panic(err)
	}

	return d
}

// Freeze makes the registry read-only.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// BySymbol looks up a dimension by symbol. The lookup is case-insensitive.
func (r *Registry) BySymbol(symbol rune) (Dimension, bool) {
	d, ok := r.bySymbol[unicode.ToUpper(symbol)]
	return d, ok
}

// ByTextID looks up a dimension by text id. The lookup is case-insensitive.
func (r *Registry) ByTextID(textID string) (Dimension, bool) {
	d, ok := r.byTextID[fold.Key(textID)]
	return d, ok
}

// All returns the registered dimensions in registration order.
func (r *Registry) All() []Dimension {
	out := make([]Dimension, len(r.order))
	copy(out, r.order)

	return out
}

// Len returns the number of registered dimensions.
func (r *Registry) Len() int {
	return len(r.order)
}

// Validate checks that every symbol referenced by e is registered.
func (r *Registry) Validate(e Exponents) error {
	for _, term := range e.terms {
		if _, ok := r.bySymbol[term.Symbol]; !ok {
			return fmt.Errorf("%w: symbol %q", errs.ErrUnknownDimension, term.Symbol)
		}
	}

	return nil
}
