// Package catalog holds measurement categories and their units.
//
// A measurement category (Position, Time, Velocity, ...) is identified at the
// type level by an empty marker struct and at runtime by a name and an exponent
// vector over base dimensions. Each category has a base unit and any number of
// further units, each carrying a to-base / from-base transform pair.
//
// # Building a Catalog
//
// Catalogs are assembled with a Builder and then frozen:
//
//	type Position struct{}
//
//	b, _ := catalog.NewBuilder(catalog.WithLogger(logger))
//	b.DefineDimension("Length", 'L')
//	position, _ := catalog.Define[Position](b, "Position",
//	    dimension.NewExponents(map[rune]int{'L': 1}), "Meter", "Meters", "m")
//	feet, _ := position.DefineUnit("Foot", "Feet", transform.Scale(0.3048), "ft")
//	cat, _ := b.Build()
//
// After Build the catalog, its measurements and its units are immutable and may
// be shared between goroutines without synchronization.
//
// # Conversions
//
// Every conversion routes through the category's base unit:
//
//	Conversion(from, to) == transform.Compose(from.ToBase(), to.FromBase())
//
// There is no direct unit-to-unit table. Because *Unit[C] carries the category
// marker, converting between categories is a compile-time error. The type-erased
// UnitInfo view, used by runtime-registered categories, checks the category at
// runtime and returns errs.ErrDimensionMismatch instead.
package catalog
