package catalog

import (
	"slices"

	"github.com/arloliu/mensura/internal/fold"
	"github.com/arloliu/mensura/transform"
)

// Unit is a concrete scale within the measurement category C.
//
// Units are created by Define (base units) and Measurement.DefineUnit and are
// immutable afterwards. Two units are the same unit when their names match
// within the same category; see Equal.
type Unit[C Category] struct {
	name     string
	plural   string
	symbols  []string
	toBase   transform.Transform
	fromBase transform.Transform
	id       uint64
	m        *Measurement[C]
}

var _ UnitInfo = (*Unit[runtimeCategory])(nil)

// Name returns the singular unit name.
func (u *Unit[C]) Name() string {
	return u.name
}

// Plural returns the plural unit name.
func (u *Unit[C]) Plural() string {
	return u.plural
}

// Symbols returns a copy of the unit's symbols.
func (u *Unit[C]) Symbols() []string {
	return slices.Clone(u.symbols)
}

// Symbol returns the first symbol, or the name when the unit has no symbol.
func (u *Unit[C]) Symbol() string {
	if len(u.symbols) == 0 {
		return u.name
	}

	return u.symbols[0]
}

// ToBase returns the transform from this unit into the base unit.
func (u *Unit[C]) ToBase() transform.Transform {
	return u.toBase
}

// FromBase returns the transform from the base unit into this unit.
func (u *Unit[C]) FromBase() transform.Transform {
	return u.fromBase
}

// ID returns the stable identifier of the unit, derived from its category and name.
func (u *Unit[C]) ID() uint64 {
	return u.id
}

// Measurement returns the category the unit belongs to.
func (u *Unit[C]) Measurement() *Measurement[C] {
	return u.m
}

// Category returns the name of the unit's category.
func (u *Unit[C]) Category() string {
	return u.m.name
}

// IsBase reports whether u is the base unit of its category.
func (u *Unit[C]) IsBase() bool {
	return u.m.base == u
}

// Equal reports whether u and o name the same unit of the same category.
func (u *Unit[C]) Equal(o *Unit[C]) bool {
	if u == o {
		return true
	}
	if u == nil || o == nil {
		return false
	}

	return u.name == o.name && fold.Equal(u.m.name, o.m.name)
}

// ConversionTo returns the transform converting values in u into values in target.
func (u *Unit[C]) ConversionTo(target *Unit[C]) transform.Transform {
	return Conversion(u, target)
}

func (u *Unit[C]) String() string {
	return u.name
}
