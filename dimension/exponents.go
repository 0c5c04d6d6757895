package dimension

import (
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Term is one factor of an exponent vector: Symbol raised to Power.
type Term struct {
	Symbol rune
	Power  int
}

// Exponents is an immutable exponent vector over dimension symbols.
//
// Terms are kept sorted by symbol and zero powers are dropped, so two vectors
// describing the same signature always have the same representation. The zero
// value is the dimensionless vector.
type Exponents struct {
	terms []Term
}

// NewExponents builds an exponent vector from a symbol → power map. Symbols are
// upper-cased; zero powers are dropped.
func NewExponents(powers map[rune]int) Exponents {
	acc := make(map[rune]int, len(powers))
	for sym, p := range powers {
		acc[unicode.ToUpper(sym)] += p
	}

	return fromMap(acc)
}

// Dimensionless returns the empty exponent vector.
func Dimensionless() Exponents {
	return Exponents{}
}

func fromMap(m map[rune]int) Exponents {
	terms := make([]Term, 0, len(m))
	for sym, p := range m {
		if p != 0 {
			terms = append(terms, Term{Symbol: sym, Power: p})
		}
	}
	slices.SortFunc(terms, func(a, b Term) int { return int(a.Symbol) - int(b.Symbol) })

	return Exponents{terms: terms}
}

// Power returns the exponent of symbol, or zero when it does not appear.
func (e Exponents) Power(symbol rune) int {
	symbol = unicode.ToUpper(symbol)
	for _, t := range e.terms {
		if t.Symbol == symbol {
			return t.Power
		}
	}

	return 0
}

// Terms returns a copy of the non-zero terms sorted by symbol.
func (e Exponents) Terms() []Term {
	return slices.Clone(e.terms)
}

// Map returns the exponent vector as a symbol → power map.
func (e Exponents) Map() map[rune]int {
	m := make(map[rune]int, len(e.terms))
	for _, t := range e.terms {
		m[t.Symbol] = t.Power
	}

	return m
}

// Len returns the number of non-zero terms.
func (e Exponents) Len() int {
	return len(e.terms)
}

// IsDimensionless reports whether every power is zero.
func (e Exponents) IsDimensionless() bool {
	return len(e.terms) == 0
}

// Equal reports whether e and o describe the same signature.
func (e Exponents) Equal(o Exponents) bool {
	return slices.Equal(e.terms, o.terms)
}

// Mul returns the signature of a product: powers are added.
func (e Exponents) Mul(o Exponents) Exponents {
	m := e.Map()
	for _, t := range o.terms {
		m[t.Symbol] += t.Power
	}

	return fromMap(m)
}

// Div returns the signature of a quotient: powers are subtracted.
func (e Exponents) Div(o Exponents) Exponents {
	m := e.Map()
	for _, t := range o.terms {
		m[t.Symbol] -= t.Power
	}

	return fromMap(m)
}

// String formats the vector as "L·T^-1"; the dimensionless vector is "1".
func (e Exponents) String() string {
	if len(e.terms) == 0 {
		return "1"
	}

	var sb strings.Builder
	for i, t := range e.terms {
		if i > 0 {
			sb.WriteString("·")
		}
		sb.WriteRune(t.Symbol)
		if t.Power != 1 {
			sb.WriteByte('^')
			sb.WriteString(strconv.Itoa(t.Power))
		}
	}

	return sb.String()
}
