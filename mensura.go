// Package mensura represents measured values tagged with their unit and
// converts them between units of the same measurement category.
//
// Conversions are linear-fractional transforms, so scale units (feet to
// meters), offset units (Celsius to Kelvin) and reciprocal units all compose
// through the same 2×2 matrix algebra. Quantities come in two kinds:
//
//   - Affine values are points, such as a reading of 20 °C.
//   - Diff values are displacements, such as a change of 5 °C.
//
// Subtracting two points gives a difference, and adding a difference to a
// point gives a point. Differences convert with the offset removed, so a
// change of 10 K equals a change of 10 °C and of 18 °F.
//
// # Basic Usage
//
// Typed quantities are checked at compile time:
//
//	import (
//	    "github.com/arloliu/mensura/quantity"
//	    "github.com/arloliu/mensura/units"
//	)
//
//	boiling := quantity.NewAffine1(units.Celsius, 100)
//	fmt.Println(boiling.ConvertTo(units.Fahrenheit)) // 212 °F
//
//	p := quantity.NewAffine3(units.Feet, 3, 4, 0)
//	d := p.Sub(quantity.Origin[units.Position, quantity.Vec3](units.Feet))
//	fmt.Println(d.Magnitude()) // Δ5 ft
//
// Text input goes through the default catalog:
//
//	v, err := mensura.Convert(72, "°F", "°C")
//	q, err := mensura.Parse("3.2 ft")
//
// # Package Structure
//
// This package wraps the most common operations. The building blocks live in
// transform, dimension, catalog, units, quantity, batch, dynamic, seed and
// codec.
package mensura

import (
	"fmt"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/dynamic"
	"github.com/arloliu/mensura/internal/hash"
	"github.com/arloliu/mensura/quantity"
	"github.com/arloliu/mensura/transform"
	"github.com/arloliu/mensura/units"
)

// Affine is a point quantity of category C with the components of V.
type Affine[C catalog.Category, V quantity.Vector] = quantity.Affine[C, V]

// Diff is a difference quantity of category C with the components of V.
type Diff[C catalog.Category, V quantity.Vector] = quantity.Diff[C, V]

// Default returns the frozen catalog of built-in units.
func Default() *catalog.Catalog {
	return units.Default()
}

// NewBuilder returns a catalog builder preloaded with the built-in
// dimensions, categories and units, ready to be extended.
//
// Parameters:
//   - opts: catalog options such as catalog.WithLogger
//
// Returns:
//   - *catalog.Builder: builder to extend and Build
//   - error: an invalid option
//
// Example:
//
//	b, _ := mensura.NewBuilder(catalog.WithLogger(logger))
//	m, _ := b.Measurement("Position")
//	_, _ = m.AddUnit("Furlong", "Furlongs", transform.Scale(201.168), "fur")
//	cat, _ := b.Build()
func NewBuilder(opts ...catalog.Option) (*catalog.Builder, error) {
	return units.NewBuilder(opts...)
}

// Convert converts an affine value between two units of the default catalog.
//
// Units are resolved by name, plural or symbol. A "Category/Unit" reference
// disambiguates symbols shared by several categories.
//
// Parameters:
//   - value: value expressed in from
//   - from: source unit reference, e.g. "°F"
//   - to: target unit reference, e.g. "Celsius"
//
// Returns:
//   - float64: value expressed in to
//   - error: ErrUnknownUnit, ErrAmbiguousUnit or ErrDimensionMismatch
func Convert(value float64, from, to string) (float64, error) {
	t, err := conversion(from, to)
	if err != nil {
		return 0, err
	}

	return t.Apply(value), nil
}

// ConvertDifference converts a difference between two units of the default
// catalog. Offsets do not apply, so ConvertDifference(10, "K", "°F") is 18.
func ConvertDifference(value float64, from, to string) (float64, error) {
	t, err := conversion(from, to)
	if err != nil {
		return 0, err
	}

	return t.Displacement().Apply(value), nil
}

// Parse reads a quantity such as "3.2 ft" using the default catalog.
func Parse(s string) (dynamic.Quantity, error) {
	return dynamic.Parse(units.Default(), s)
}

// UnitID returns the identifier of unit name within category, as reported by
// catalog.Unit.ID and stored in encoded blobs.
func UnitID(category, name string) uint64 {
	return hash.UnitID(category, name)
}

func conversion(from, to string) (transform.Transform, error) {
	c := units.Default()

	src, err := c.FindUnit(from)
	if err != nil {
		return transform.Transform{}, fmt.Errorf("source unit: %w", err)
	}
	dst, err := c.FindUnit(to)
	if err != nil {
		return transform.Transform{}, fmt.Errorf("target unit: %w", err)
	}

	return catalog.AnyConversion(src, dst)
}
