package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/fold"
	"github.com/arloliu/mensura/internal/options"
	"github.com/arloliu/mensura/transform"
)

// Builder assembles dimensions, measurement categories and units into a Catalog.
//
// A Builder is not safe for concurrent use. Once Build succeeds the builder and
// everything defined through it become read-only; further definitions fail with
// errs.ErrCatalogFrozen.
type Builder struct {
	dims         *dimension.Registry
	logger       *zap.Logger
	measurements []MeasurementInfo
	byName       map[string]MeasurementInfo
	markers      map[reflect.Type]MeasurementInfo
	ids          map[uint64]UnitInfo
	built        bool
}

// NewBuilder creates an empty builder.
//
// Parameters:
//   - opts: optional configuration such as WithLogger and WithRegistry
//
// Returns:
//   - *Builder: the new builder
//   - error: errs.ErrInvalidOption if an option is rejected
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		dims:    dimension.NewRegistry(),
		logger:  zap.NewNop(),
		byName:  make(map[string]MeasurementInfo),
		markers: make(map[reflect.Type]MeasurementInfo),
		ids:     make(map[uint64]UnitInfo),
	}

	if err := options.Apply(b, opts...); err != nil {
		return nil, err
	}

	return b, nil
}

// DefineDimension registers a base dimension in the builder's registry.
func (b *Builder) DefineDimension(textID string, symbol rune) (dimension.Dimension, error) {
	d, err := b.dims.Register(textID, symbol)
	if err != nil {
		return dimension.Dimension{}, err
	}

	b.logger.Debug("defined dimension", zap.Stringer("dimension", d))

	return d, nil
}

// MustDefineDimension is like DefineDimension but panics on error.
func (b *Builder) MustDefineDimension(textID string, symbol rune) dimension.Dimension {
	d, err := b.DefineDimension(textID, symbol)
	if err != nil {
		panic(err)
	}

	return d
}

// Dimensions returns the builder's dimension registry.
func (b *Builder) Dimensions() *dimension.Registry {
	return b.dims
}

// Logger returns the builder's logger.
func (b *Builder) Logger() *zap.Logger {
	return b.logger
}

// Measurement returns a previously defined category by name, compared
// case-insensitively.
func (b *Builder) Measurement(name string) (MeasurementInfo, bool) {
	m, ok := b.byName[fold.Key(name)]
	return m, ok
}

// Define creates the measurement category tagged by the marker type C together
// with its base unit.
//
// Parameters:
//   - b: builder that owns the category
//   - name: category name, unique case-insensitively within the builder
//   - exps: exponent vector over dimensions registered in b
//   - baseName, basePlural, baseSymbols: the base unit's names
//
// Returns:
//   - *Measurement[C]: the new category
//   - error: errs.ErrCatalogFrozen, errs.ErrEmptyCategoryName,
//     errs.ErrDuplicateCategory (name or marker type reused),
//     errs.ErrUnknownDimension, or any error of DefineUnit for the base unit
func Define[C Category](b *Builder, name string, exps dimension.Exponents, baseName, basePlural string, baseSymbols ...string) (*Measurement[C], error) {
	marker := reflect.TypeFor[C]()
	if prev, ok := b.markers[marker]; ok {
		return nil, fmt.Errorf("%w: marker %s already tags %s", errs.ErrDuplicateCategory, marker, prev.Name())
	}

	m, err := define[C](b, name, exps, true, baseName, basePlural, baseSymbols)
	if err != nil {
		return nil, err
	}
	b.markers[marker] = m

	return m, nil
}

// MustDefine is like Define but panics on error. It is intended for catalogs
// built during package initialization.
func MustDefine[C Category](b *Builder, name string, exps dimension.Exponents, baseName, basePlural string, baseSymbols ...string) *Measurement[C] {
	m, err := Define[C](b, name, exps, baseName, basePlural, baseSymbols...)
	if err != nil {
		panic(err)
	}

	return m
}

// DefineRuntime creates a category that has no marker type, for example one
// loaded from seed data. Its units are only reachable through UnitInfo, and
// arithmetic on them is checked at runtime.
func (b *Builder) DefineRuntime(name string, exps dimension.Exponents, baseName, basePlural string, baseSymbols ...string) (MeasurementInfo, error) {
	m, err := define[runtimeCategory](b, name, exps, false, baseName, basePlural, baseSymbols)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func define[C Category](b *Builder, name string, exps dimension.Exponents, typed bool, baseName, basePlural string, baseSymbols []string) (*Measurement[C], error) {
	if b.built {
		return nil, fmt.Errorf("%w: cannot define category %q", errs.ErrCatalogFrozen, name)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.ErrEmptyCategoryName
	}

	key := fold.Key(name)
	if _, ok := b.byName[key]; ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrDuplicateCategory, name)
	}

	if err := b.dims.Validate(exps); err != nil {
		return nil, fmt.Errorf("category %q: %w", name, err)
	}

	m := newMeasurement[C](b, name, exps, typed)
	base, err := m.addUnit(baseName, basePlural, transform.Identity(), baseSymbols)
	if err != nil {
		return nil, err
	}
	m.base = base

	b.measurements = append(b.measurements, m)
	b.byName[key] = m

	b.logger.Debug("defined measurement",
		zap.String("category", name),
		zap.Stringer("dimensions", exps),
		zap.String("base", baseName),
		zap.Bool("typed", typed),
	)

	return m, nil
}

// Build freezes the builder and returns the catalog.
//
// The dimension registry is frozen as well. Calling Build more than once
// returns catalogs sharing the same frozen contents.
func (b *Builder) Build() (*Catalog, error) {
	b.built = true
	b.dims.Freeze()

	c := &Catalog{
		dims:         b.dims,
		logger:       b.logger,
		measurements: append([]MeasurementInfo(nil), b.measurements...),
		byName:       b.byName,
		markers:      b.markers,
		ids:          b.ids,
	}

	b.logger.Info("catalog built",
		zap.Int("dimensions", b.dims.Len()),
		zap.Int("measurements", len(b.measurements)),
		zap.Int("units", len(b.ids)),
	)

	return c, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() *Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}

	return c
}
