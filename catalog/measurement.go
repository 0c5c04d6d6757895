package catalog

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/hash"
	"github.com/arloliu/mensura/transform"
)

// Measurement is a measurement category: a name, an exponent vector over base
// dimensions, a base unit and the units registered for it.
type Measurement[C Category] struct {
	name     string
	exps     dimension.Exponents
	typed    bool
	base     *Unit[C]
	units    []*Unit[C]
	byName   map[string]*Unit[C]
	byPlural map[string]*Unit[C]
	bySymbol map[string]*Unit[C]
	byID     map[uint64]*Unit[C]
	owner    *Builder
}

var _ MeasurementInfo = (*Measurement[runtimeCategory])(nil)

func newMeasurement[C Category](b *Builder, name string, exps dimension.Exponents, typed bool) *Measurement[C] {
	return &Measurement[C]{
		name:     name,
		exps:     exps,
		typed:    typed,
		byName:   make(map[string]*Unit[C]),
		byPlural: make(map[string]*Unit[C]),
		bySymbol: make(map[string]*Unit[C]),
		byID:     make(map[uint64]*Unit[C]),
		owner:    b,
	}
}

// Name returns the category name.
func (m *Measurement[C]) Name() string {
	return m.name
}

// Dimensions returns the category's exponent vector.
func (m *Measurement[C]) Dimensions() dimension.Exponents {
	return m.exps
}

// Base returns the base unit.
func (m *Measurement[C]) Base() *Unit[C] {
	return m.base
}

// BaseUnit returns the base unit as a UnitInfo.
func (m *Measurement[C]) BaseUnit() UnitInfo {
	return m.base
}

// Typed reports whether the category has a compile-time marker type.
func (m *Measurement[C]) Typed() bool {
	return m.typed
}

// Units returns the category's units in definition order, base unit first.
func (m *Measurement[C]) Units() []*Unit[C] {
	out := make([]*Unit[C], len(m.units))
	copy(out, m.units)

	return out
}

// UnitInfos returns the category's units as UnitInfo values.
func (m *Measurement[C]) UnitInfos() []UnitInfo {
	out := make([]UnitInfo, len(m.units))
	for i, u := range m.units {
		out[i] = u
	}

	return out
}

// Unit returns the unit with the given name.
func (m *Measurement[C]) Unit(name string) (*Unit[C], bool) {
	u, ok := m.byName[name]
	return u, ok
}

// Lookup resolves a unit by name, then plural, then symbol.
func (m *Measurement[C]) Lookup(nameOrSymbol string) (*Unit[C], bool) {
	if u, ok := m.byName[nameOrSymbol]; ok {
		return u, true
	}
	if u, ok := m.byPlural[nameOrSymbol]; ok {
		return u, true
	}
	u, ok := m.bySymbol[nameOrSymbol]

	return u, ok
}

// FindUnit is the type-erased form of Lookup.
func (m *Measurement[C]) FindUnit(nameOrSymbol string) (UnitInfo, bool) {
	u, ok := m.Lookup(nameOrSymbol)
	if !ok {
		return nil, false
	}

	return u, true
}

// UnitByID returns the unit with the given identifier.
func (m *Measurement[C]) UnitByID(id uint64) (*Unit[C], bool) {
	u, ok := m.byID[id]
	return u, ok
}

// DefineUnit registers a unit given its transform into the base unit. The
// from-base transform is derived as the inverse of toBase. An empty plural
// defaults to the name.
//
// Units are identified by name: defining two differently named units with
// numerically identical transforms is allowed and models an alias.
//
// Returns:
//   - *Unit[C]: the new unit
//   - error: ErrCatalogFrozen, ErrEmptyUnitName, ErrDuplicateUnit (name or
//     symbol already used in the category), ErrSingularTransform, or
//     ErrHashCollision
func (m *Measurement[C]) DefineUnit(name, plural string, toBase transform.Transform, symbols ...string) (*Unit[C], error) {
	if m.owner.built {
		return nil, fmt.Errorf("%w: cannot define unit %q in %s", errs.ErrCatalogFrozen, name, m.name)
	}

	if toBase.IsSingular() {
		return nil, fmt.Errorf("%w: unit %q of %s has to-base transform %s", errs.ErrSingularTransform, name, m.name, toBase)
	}

	return m.addUnit(name, plural, toBase, symbols)
}

// MustDefineUnit is like DefineUnit but panics on error.
func (m *Measurement[C]) MustDefineUnit(name, plural string, toBase transform.Transform, symbols ...string) *Unit[C] {
	u, err := m.DefineUnit(name, plural, toBase, symbols...)
	if err != nil {
		panic(err)
	}

	return u
}

// AddUnit is the type-erased form of DefineUnit.
func (m *Measurement[C]) AddUnit(name, plural string, toBase transform.Transform, symbols ...string) (UnitInfo, error) {
	u, err := m.DefineUnit(name, plural, toBase, symbols...)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (m *Measurement[C]) addUnit(name, plural string, toBase transform.Transform, symbols []string) (*Unit[C], error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: in %s", errs.ErrEmptyUnitName, m.name)
	}
	if plural == "" {
		plural = name
	}

	if _, ok := m.byName[name]; ok {
		return nil, fmt.Errorf("%w: %s already has unit %q", errs.ErrDuplicateUnit, m.name, name)
	}
	for i, sym := range symbols {
		if sym == "" {
			return nil, fmt.Errorf("%w: unit %q of %s has an empty symbol", errs.ErrDuplicateUnit, name, m.name)
		}
		if prev, ok := m.bySymbol[sym]; ok {
			return nil, fmt.Errorf("%w: symbol %q of unit %q is used by %q", errs.ErrDuplicateUnit, sym, name, prev.name)
		}
		for _, other := range symbols[:i] {
			if other == sym {
				return nil, fmt.Errorf("%w: unit %q lists symbol %q twice", errs.ErrDuplicateUnit, name, sym)
			}
		}
	}

	id := hash.UnitID(m.name, name)
	if prev, ok := m.owner.ids[id]; ok {
		return nil, fmt.Errorf("%w: %s/%s and %s/%s", errs.ErrHashCollision, m.name, name, prev.Category(), prev.Name())
	}

	u := &Unit[C]{
		name:     name,
		plural:   plural,
		symbols:  append([]string(nil), symbols...),
		toBase:   toBase,
		fromBase: toBase.Inverse(),
		id:       id,
		m:        m,
	}

	m.units = append(m.units, u)
	m.byName[name] = u
	if _, ok := m.byPlural[plural]; !ok {
		m.byPlural[plural] = u
	}
	for _, sym := range symbols {
		m.bySymbol[sym] = u
	}
	m.byID[id] = u
	m.owner.ids[id] = u

	m.owner.logger.Debug("defined unit",
		zap.String("category", m.name),
		zap.String("unit", name),
		zap.Strings("symbols", symbols),
		zap.Stringer("toBase", toBase),
	)

	return u, nil
}
