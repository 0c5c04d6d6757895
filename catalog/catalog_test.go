package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/hash"
	"github.com/arloliu/mensura/transform"
)

type testLength struct{}

type testTemperature struct{}

type testOther struct{}

type fixture struct {
	b          *Builder
	length     *Measurement[testLength]
	meter      *Unit[testLength]
	foot       *Unit[testLength]
	inch       *Unit[testLength]
	temp       *Measurement[testTemperature]
	kelvin     *Unit[testTemperature]
	celsius    *Unit[testTemperature]
	fahrenheit *Unit[testTemperature]
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	b, err := NewBuilder(opts...)
	require.NoError(t, err)

	_, err = b.DefineDimension("Length", 'L')
	require.NoError(t, err)
	_, err = b.DefineDimension("Temperature", 'Θ')
	require.NoError(t, err)

	f := &fixture{b: b}
	f.length, err = Define[testLength](b, "Length", dimension.NewExponents(map[rune]int{'L': 1}), "Meter", "Meters", "m")
	require.NoError(t, err)
	f.meter = f.length.Base()
	f.foot, err = f.length.DefineUnit("Foot", "Feet", transform.Scale(0.3048), "ft")
	require.NoError(t, err)
	f.inch, err = f.length.DefineUnit("Inch", "Inches", transform.Scale(0.0254), "in")
	require.NoError(t, err)

	f.temp, err = Define[testTemperature](b, "Temperature", dimension.NewExponents(map[rune]int{'Θ': 1}), "Kelvin", "Kelvin", "K")
	require.NoError(t, err)
	f.kelvin = f.temp.Base()
	f.celsius, err = f.temp.DefineUnit("Celsius", "", transform.Affine(1, 273.15), "°C")
	require.NoError(t, err)
	f.fahrenheit, err = f.temp.DefineUnit("Fahrenheit", "", transform.Affine(5.0/9.0, 459.67*5.0/9.0), "°F")
	require.NoError(t, err)

	return f
}

func TestNewBuilder_Options(t *testing.T) {
	_, err := NewBuilder(WithLogger(nil))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	_, err = NewBuilder(WithRegistry(nil))
	require.ErrorIs(t, err, errs.ErrInvalidOption)

	reg := dimension.NewRegistry()
	reg.MustRegister("Length", 'L')
	b, err := NewBuilder(WithRegistry(reg))
	require.NoError(t, err)
	require.Same(t, reg, b.Dimensions())

	_, err = b.Build()
	require.NoError(t, err)
	require.True(t, reg.Frozen())
}

func TestDefine(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, "Length", f.length.Name())
	require.True(t, f.length.Typed())
	require.True(t, f.meter.IsBase())
	require.False(t, f.foot.IsBase())
	require.True(t, f.meter.ToBase().IsIdentity())
	require.Equal(t, "Length", f.foot.Category())
	require.Same(t, f.length, f.foot.Measurement())

	units := f.length.Units()
	require.Len(t, units, 3)
	require.Same(t, f.meter, units[0])
	require.Same(t, f.foot, units[1])
	require.Len(t, f.length.UnitInfos(), 3)
}

func TestDefine_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "duplicate marker",
			run: func() error {
				_, err := Define[testLength](f.b, "Distance", dimension.NewExponents(map[rune]int{'L': 1}), "Meter", "")
				return err
			},
			want: errs.ErrDuplicateCategory,
		},
		{
			name: "duplicate name case-insensitive",
			run: func() error {
				_, err := Define[testOther](f.b, "LENGTH", dimension.NewExponents(map[rune]int{'L': 1}), "Meter", "")
				return err
			},
			want: errs.ErrDuplicateCategory,
		},
		{
			name: "empty name",
			run: func() error {
				_, err := Define[testOther](f.b, "  ", dimension.Dimensionless(), "One", "")
				return err
			},
			want: errs.ErrEmptyCategoryName,
		},
		{
			name: "unknown dimension",
			run: func() error {
				_, err := Define[testOther](f.b, "Mass", dimension.NewExponents(map[rune]int{'M': 1}), "Kilogram", "")
				return err
			},
			want: errs.ErrUnknownDimension,
		},
		{
			name: "empty base unit name",
			run: func() error {
				_, err := f.b.DefineRuntime("Width", dimension.NewExponents(map[rune]int{'L': 1}), "", "")
				return err
			},
			want: errs.ErrEmptyUnitName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.run(), tt.want)
		})
	}
}

func TestDefineUnit_Errors(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name    string
		unit    string
		toBase  transform.Transform
		symbols []string
		want    error
	}{
		{name: "empty name", unit: "", toBase: transform.Scale(2), want: errs.ErrEmptyUnitName},
		{name: "duplicate name", unit: "Foot", toBase: transform.Scale(2), want: errs.ErrDuplicateUnit},
		{name: "duplicate symbol", unit: "Fathom", toBase: transform.Scale(1.8288), symbols: []string{"ft"}, want: errs.ErrDuplicateUnit},
		{name: "repeated symbol", unit: "Fathom", toBase: transform.Scale(1.8288), symbols: []string{"fth", "fth"}, want: errs.ErrDuplicateUnit},
		{name: "singular", unit: "Nothing", toBase: transform.Scale(0), want: errs.ErrSingularTransform},
		{name: "singular general", unit: "Flat", toBase: transform.New(1, 2, 2, 4), want: errs.ErrSingularTransform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.length.DefineUnit(tt.unit, "", tt.toBase, tt.symbols...)
			require.ErrorIs(t, err, tt.want)
		})
	}

	require.Len(t, f.length.Units(), 3, "failed definitions must not register units")
}

func TestDefineUnit_Alias(t *testing.T) {
	f := newFixture(t)

	alias, err := f.length.DefineUnit("Metre", "Metres", transform.Identity())
	require.NoError(t, err)
	require.False(t, alias.Equal(f.meter), "units are identified by name")
	require.True(t, Conversion(alias, f.meter).IsIdentity())
}

func TestDefineUnit_PluralDefaultsToName(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, "Celsius", f.celsius.Plural())
}

func TestUnit_Accessors(t *testing.T) {
	f := newFixture(t)

	require.Equal(t, "Foot", f.foot.Name())
	require.Equal(t, "Feet", f.foot.Plural())
	require.Equal(t, []string{"ft"}, f.foot.Symbols())
	require.Equal(t, "ft", f.foot.Symbol())
	require.Equal(t, "Foot", f.foot.String())
	require.Equal(t, hash.UnitID("Length", "Foot"), f.foot.ID())
	require.True(t, f.foot.ToBase().Then(f.foot.FromBase()).IsIdentity())

	syms := f.foot.Symbols()
	syms[0] = "changed"
	require.Equal(t, "ft", f.foot.Symbol(), "Symbols returns a copy")

	noSym, err := f.length.DefineUnit("League", "Leagues", transform.Scale(4828.032))
	require.NoError(t, err)
	require.Equal(t, "League", noSym.Symbol())
}

func TestUnit_Equal(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.foot.Equal(f.foot))
	require.False(t, f.foot.Equal(f.meter))
	require.False(t, f.foot.Equal(nil))

	var nilUnit *Unit[testLength]
	require.True(t, nilUnit.Equal(nil))
}

func TestMeasurement_Lookup(t *testing.T) {
	f := newFixture(t)

	for _, ref := range []string{"Foot", "Feet", "ft"} {
		u, ok := f.length.Lookup(ref)
		require.True(t, ok, ref)
		require.Same(t, f.foot, u)
	}

	_, ok := f.length.Lookup("yd")
	require.False(t, ok)

	u, ok := f.length.Unit("Inch")
	require.True(t, ok)
	require.Same(t, f.inch, u)

	info, ok := f.length.FindUnit("in")
	require.True(t, ok)
	require.Equal(t, "Inch", info.Name())

	_, ok = f.length.FindUnit("mile")
	require.False(t, ok)

	byID, ok := f.length.UnitByID(f.foot.ID())
	require.True(t, ok)
	require.Same(t, f.foot, byID)
}

func TestConversion(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		conv transform.Transform
		in   float64
		want float64
	}{
		{name: "feet to meters", conv: Conversion(f.foot, f.meter), in: 10, want: 3.048},
		{name: "meters to feet", conv: Conversion(f.meter, f.foot), in: 3.048, want: 10},
		{name: "feet to inches", conv: Conversion(f.foot, f.inch), in: 1, want: 12},
		{name: "celsius to fahrenheit", conv: Conversion(f.celsius, f.fahrenheit), in: 100, want: 212},
		{name: "fahrenheit to celsius", conv: Conversion(f.fahrenheit, f.celsius), in: 32, want: 0},
		{name: "celsius to kelvin", conv: Conversion(f.celsius, f.kelvin), in: 0, want: 273.15},
		{name: "kelvin to fahrenheit", conv: Conversion(f.kelvin, f.fahrenheit), in: 0, want: -459.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, tt.conv.Apply(tt.in), 1e-9)
		})
	}
}

func TestConversion_RoutesThroughBase(t *testing.T) {
	f := newFixture(t)

	got := Conversion(f.foot, f.inch)
	want := transform.Compose(f.foot.ToBase(), f.inch.FromBase())
	require.True(t, got.Equal(want))
	require.True(t, Conversion(f.foot, f.foot).IsIdentity())
	require.True(t, f.foot.ConversionTo(f.inch).Equal(want))
}

func TestConversion_RoundTrip(t *testing.T) {
	f := newFixture(t)

	units := f.temp.Units()
	for _, from := range units {
		for _, to := range units {
			there := Conversion(from, to)
			back := Conversion(to, from)
			for _, x := range []float64{-40, 0, 37.5, 1e4} {
				require.InDelta(t, x, back.Apply(there.Apply(x)), 1e-9, "%s -> %s", from, to)
			}
		}
	}
}

func TestAnyConversion(t *testing.T) {
	f := newFixture(t)

	conv, err := AnyConversion(f.foot, f.inch)
	require.NoError(t, err)
	require.InDelta(t, 24.0, conv.Apply(2), 1e-9)

	conv, err = AnyConversion(f.foot, f.foot)
	require.NoError(t, err)
	require.True(t, conv.IsIdentity())

	_, err = AnyConversion(f.foot, f.celsius)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = AnyConversion(nil, f.foot)
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
}

func TestBuild_Freezes(t *testing.T) {
	f := newFixture(t)

	cat, err := f.b.Build()
	require.NoError(t, err)
	require.NotNil(t, cat)

	_, err = f.length.DefineUnit("Yard", "Yards", transform.Scale(0.9144), "yd")
	require.ErrorIs(t, err, errs.ErrCatalogFrozen)

	_, err = Define[testOther](f.b, "Other", dimension.Dimensionless(), "One", "")
	require.ErrorIs(t, err, errs.ErrCatalogFrozen)

	_, err = f.b.DefineDimension("Mass", 'M')
	require.ErrorIs(t, err, errs.ErrRegistryFrozen)

	require.Panics(t, func() { f.length.MustDefineUnit("Yard", "Yards", transform.Scale(0.9144)) })
}

func TestCatalog_Queries(t *testing.T) {
	f := newFixture(t)
	rt, err := f.b.DefineRuntime("Width", dimension.NewExponents(map[rune]int{'L': 1}), "Meter", "Meters")
	require.NoError(t, err)
	require.False(t, rt.Typed())

	cat := f.b.MustBuild()

	require.Len(t, cat.Measurements(), 3)
	require.Equal(t, 2, cat.Dimensions().Len())

	m, ok := cat.Measurement("temperature")
	require.True(t, ok)
	require.Equal(t, "Temperature", m.Name())

	_, ok = cat.Measurement("Mass")
	require.False(t, ok)

	u, err := cat.Unit("Length", "ft")
	require.NoError(t, err)
	require.Equal(t, "Foot", u.Name())

	_, err = cat.Unit("Mass", "kg")
	require.ErrorIs(t, err, errs.ErrUnknownCategory)
	_, err = cat.Unit("Length", "kg")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)

	u, err = cat.FindUnit("°F")
	require.NoError(t, err)
	require.Same(t, f.fahrenheit, u)

	_, err = cat.FindUnit("Meter")
	require.ErrorIs(t, err, errs.ErrAmbiguousUnit)

	u, err = cat.FindUnit("Width/Meter")
	require.NoError(t, err)
	require.Equal(t, "Width", u.Category())

	_, err = cat.FindUnit("furlong")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)

	byID, ok := cat.UnitByID(f.celsius.ID())
	require.True(t, ok)
	require.Same(t, f.celsius, byID)

	conv, err := cat.Conversion(f.celsius, f.fahrenheit)
	require.NoError(t, err)
	require.InDelta(t, 212.0, conv.Apply(100), 1e-9)

	widthMeter, err := cat.FindUnit("Width/m")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
	require.Nil(t, widthMeter)
	_, err = cat.Conversion(rt.BaseUnit(), f.meter)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestLookup(t *testing.T) {
	f := newFixture(t)
	cat := f.b.MustBuild()

	m, ok := Lookup[testLength](cat)
	require.True(t, ok)
	require.Same(t, f.length, m)

	_, ok = Lookup[testOther](cat)
	require.False(t, ok)

	u, ok := TypedUnit[testTemperature](f.celsius)
	require.True(t, ok)
	require.Same(t, f.celsius, u)

	_, ok = TypedUnit[testLength](f.celsius)
	require.False(t, ok)
}

func TestBuilder_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	f := newFixture(t, WithLogger(zap.New(core)))

	_, err := f.b.Build()
	require.NoError(t, err)

	assert.Equal(t, 2, logs.FilterMessage("defined dimension").Len())
	assert.Equal(t, 2, logs.FilterMessage("defined measurement").Len())
	assert.Equal(t, 6, logs.FilterMessage("defined unit").Len())
	require.Equal(t, 1, logs.FilterMessage("catalog built").Len())

	entry := logs.FilterMessage("catalog built").All()[0]
	assert.Equal(t, int64(6), entry.ContextMap()["units"])
}

func TestMustDefine_Panics(t *testing.T) {
	f := newFixture(t)
	require.Panics(t, func() {
		MustDefine[testLength](f.b, "Again", dimension.Dimensionless(), "One", "")
	})
	require.Panics(t, func() { f.b.MustDefineDimension("Length", 'X') })

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err, _ = r.(error)
			}
		}()
		MustDefine[testLength](f.b, "Again", dimension.Dimensionless(), "One", "")
	}()
	require.True(t, errors.Is(err, errs.ErrDuplicateCategory))
}
