package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/fold"
	"github.com/arloliu/mensura/transform"
)

// Catalog is an immutable set of dimensions, measurement categories and units.
// It is safe for concurrent use.
type Catalog struct {
	dims         *dimension.Registry
	logger       *zap.Logger
	measurements []MeasurementInfo
	byName       map[string]MeasurementInfo
	markers      map[reflect.Type]MeasurementInfo
	ids          map[uint64]UnitInfo
}

// Dimensions returns the frozen dimension registry.
func (c *Catalog) Dimensions() *dimension.Registry {
	return c.dims
}

// Logger returns the logger the catalog was built with.
func (c *Catalog) Logger() *zap.Logger {
	return c.logger
}

// Measurements returns all categories in definition order.
func (c *Catalog) Measurements() []MeasurementInfo {
	out := make([]MeasurementInfo, len(c.measurements))
	copy(out, c.measurements)

	return out
}

// Measurement returns the category with the given name, compared case-insensitively.
func (c *Catalog) Measurement(name string) (MeasurementInfo, bool) {
	m, ok := c.byName[fold.Key(name)]
	return m, ok
}

// Unit resolves a unit by name, plural or symbol within one category.
//
// Returns errs.ErrUnknownCategory or errs.ErrUnknownUnit when nothing matches.
func (c *Catalog) Unit(category, nameOrSymbol string) (UnitInfo, error) {
	m, ok := c.Measurement(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownCategory, category)
	}

	u, ok := m.FindUnit(nameOrSymbol)
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", errs.ErrUnknownUnit, nameOrSymbol, m.Name())
	}

	return u, nil
}

// FindUnit resolves a unit by name, plural or symbol across all categories.
//
// A qualified reference of the form "Category/Unit" is resolved within that
// category only.
//
// Returns:
//   - UnitInfo: the unique matching unit
//   - error: errs.ErrUnknownUnit when nothing matches, errs.ErrAmbiguousUnit
//     when several categories define the reference
func (c *Catalog) FindUnit(nameOrSymbol string) (UnitInfo, error) {
	if category, unit, ok := strings.Cut(nameOrSymbol, "/"); ok {
		if _, known := c.Measurement(category); known {
			return c.Unit(category, unit)
		}
	}

	var found UnitInfo
	for _, m := range c.measurements {
		u, ok := m.FindUnit(nameOrSymbol)
		if !ok {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%w: %q is defined by %s and %s", errs.ErrAmbiguousUnit, nameOrSymbol, found.Category(), u.Category())
		}
		found = u
	}

	if found == nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownUnit, nameOrSymbol)
	}

	return found, nil
}

// UnitByID returns the unit with the given identifier.
func (c *Catalog) UnitByID(id uint64) (UnitInfo, bool) {
	u, ok := c.ids[id]
	return u, ok
}

// Conversion returns the transform between two units of the same category.
// It is the runtime-checked counterpart of the package-level Conversion.
func (c *Catalog) Conversion(from, to UnitInfo) (transform.Transform, error) {
	return AnyConversion(from, to)
}

// Lookup returns the category tagged by the marker type C.
func Lookup[C Category](c *Catalog) (*Measurement[C], bool) {
	m, ok := c.markers[reflect.TypeFor[C]()]
	if !ok {
		return nil, false
	}
	typed, ok := m.(*Measurement[C])

	return typed, ok
}

// TypedUnit narrows a UnitInfo to the unit type of category C.
func TypedUnit[C Category](u UnitInfo) (*Unit[C], bool) {
	typed, ok := u.(*Unit[C])
	return typed, ok
}
