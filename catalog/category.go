package catalog

import (
	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/transform"
)

// Category is the constraint satisfied by measurement category marker types.
//
// Markers are empty structs; they exist only to tag units and quantities so
// that mixing categories fails to compile:
//
//	type Position struct{}
//	type Time struct{}
type Category interface {
	~struct{}
}

// runtimeCategory tags categories defined at runtime, for example from seed
// data. It is unexported so that such categories are only reachable through the
// type-erased views, where category checks happen at runtime.
type runtimeCategory struct{}

// UnitInfo is the type-erased view of a unit.
type UnitInfo interface {
	// Name returns the singular name, which identifies the unit within its category.
	Name() string
	// Plural returns the plural display name.
	Plural() string
	// Symbols returns the unit's symbols, such as "ft" or "°C".
	Symbols() []string
	// ToBase returns the transform into the category's base unit.
	ToBase() transform.Transform
	// FromBase returns the transform out of the category's base unit.
	FromBase() transform.Transform
	// ID returns the stable 64-bit identifier of the unit.
	ID() uint64
	// Category returns the name of the owning measurement category.
	Category() string
	// IsBase reports whether the unit is its category's base unit.
	IsBase() bool
}

// MeasurementInfo is the type-erased view of a measurement category.
type MeasurementInfo interface {
	// Name returns the category name.
	Name() string
	// Dimensions returns the category's exponent vector.
	Dimensions() dimension.Exponents
	// BaseUnit returns the category's base unit.
	BaseUnit() UnitInfo
	// UnitInfos returns the units in definition order, base unit first.
	UnitInfos() []UnitInfo
	// FindUnit resolves a unit by name, plural or symbol.
	FindUnit(nameOrSymbol string) (UnitInfo, bool)
	// AddUnit defines a unit in the category; see Measurement.DefineUnit.
	AddUnit(name, plural string, toBase transform.Transform, symbols ...string) (UnitInfo, error)
	// Typed reports whether the category has a compile-time marker type.
	Typed() bool
}
