package dynamic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/quantity"
	"github.com/arloliu/mensura/transform"
	"github.com/arloliu/mensura/units"
)

func TestParse(t *testing.T) {
	cat := units.Default()

	tests := []struct {
		in    string
		unit  string
		value float64
	}{
		{in: "3.2 ft", unit: "Foot", value: 3.2},
		{in: "  -40°C ", unit: "Celsius", value: -40},
		{in: "1.5e3 m", unit: "Meter", value: 1500},
		{in: "12 Position/Foot", unit: "Foot", value: 12},
		{in: "7 Miles", unit: "Mile", value: 7},
		{in: "60mph", unit: "Mile per hour", value: 60},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			q, err := Parse(cat, tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.unit, q.Unit().Name())
			require.InDelta(t, tt.value, q.Value(), 1e-12)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cat := units.Default()

	tests := []struct {
		in   string
		want error
	}{
		{in: "", want: errs.ErrInvalidQuantity},
		{in: "12", want: errs.ErrInvalidQuantity},
		{in: "ft", want: errs.ErrInvalidQuantity},
		{in: "1.2.3 ft", want: errs.ErrInvalidQuantity},
		{in: "3 furlongs", want: errs.ErrUnknownUnit},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(cat, tt.in)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestQuantity_ConvertTo(t *testing.T) {
	q := New(units.Feet, 3.2)

	in, err := q.ConvertTo(units.Inches)
	require.NoError(t, err)
	require.InDelta(t, 38.4, in.Value(), 1e-9)
	require.Equal(t, "Inch", in.Unit().Name())

	_, err = q.ConvertTo(units.Celsius)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestQuantity_Arithmetic(t *testing.T) {
	d, err := New(units.Meters, 10).Sub(New(units.Feet, 3.2))
	require.NoError(t, err)
	require.InDelta(t, 9.02464, d.Value(), 1e-9)
	require.Equal(t, "Meter", d.Unit().Name())

	_, err = New(units.Meters, 10).Sub(New(units.Seconds, 1))
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	warmer, err := New(units.Celsius, 20).Add(NewDifference(units.Fahrenheit, 18))
	require.NoError(t, err)
	require.InDelta(t, 20+(18-32)*5.0/9.0, warmer.Value(), 1e-9)

	cooler, err := New(units.Celsius, 20).SubDiff(NewDifference(units.Kelvin, 5))
	require.NoError(t, err)
	require.InDelta(t, 20-(5-273.15), cooler.Value(), 1e-9)

	step, err := NewDifference(units.Kelvin, 10).ConvertDisplacement(units.Celsius)
	require.NoError(t, err)
	shifted, err := New(units.Celsius, 20).Add(step)
	require.NoError(t, err)
	require.InDelta(t, 30.0, shifted.Value(), 1e-9)

	_, err = New(units.Celsius, 20).Add(NewDifference(units.Volts, 1))
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestDifference(t *testing.T) {
	d := NewDifference(units.Kelvin, 10)

	f, err := d.ConvertTo(units.Fahrenheit)
	require.NoError(t, err)
	require.InDelta(t, -441.67, f.Value(), 1e-9)

	f, err = d.ConvertDisplacement(units.Fahrenheit)
	require.NoError(t, err)
	require.InDelta(t, 18.0, f.Value(), 1e-9)
	require.Equal(t, "Fahrenheit", f.Unit().Name())

	sum, err := d.Add(NewDifference(units.Celsius, 5))
	require.NoError(t, err)
	require.InDelta(t, 10+278.15, sum.Value(), 1e-9)

	diff, err := d.Sub(NewDifference(units.Fahrenheit, 9))
	require.NoError(t, err)
	require.InDelta(t, 10-(9+459.67)*5.0/9.0, diff.Value(), 1e-9)

	require.Equal(t, 25.0, d.Scale(2.5).Value())
	require.Equal(t, -10.0, d.Neg().Value())
	require.Equal(t, 10.0, d.Neg().Magnitude().Value())

	_, err = d.Add(NewDifference(units.Meters, 1))
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	_, err = d.ConvertTo(units.Meters)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
	_, err = d.ConvertDisplacement(units.Meters)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestTypedBridge(t *testing.T) {
	q := FromAffine(quantity.NewAffine1(units.Feet, 2))
	require.Equal(t, 2.0, q.Value())

	a, err := ToAffine[units.Position](q)
	require.NoError(t, err)
	require.Same(t, units.Feet, a.Unit())
	require.Equal(t, 2.0, a.X())

	_, err = ToAffine[units.Time](q)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestRuntimeCategory(t *testing.T) {
	b, err := units.NewBuilder()
	require.NoError(t, err)

	luminance, err := b.DefineDimension("Luminous intensity", 'J')
	require.NoError(t, err)
	require.Equal(t, 'J', luminance.Symbol())

	m, err := b.DefineRuntime("Luminosity", dimension.NewExponents(map[rune]int{'J': 1}), "Candela", "Candelas", "cd")
	require.NoError(t, err)
	_, err = m.AddUnit("Millicandela", "Millicandelas", transform.Scale(1e-3), "mcd")
	require.NoError(t, err)

	cat, err := b.Build()
	require.NoError(t, err)

	q, err := Parse(cat, "1500 mcd")
	require.NoError(t, err)
	cd, err := cat.Unit("Luminosity", "cd")
	require.NoError(t, err)

	got, err := q.ConvertTo(cd)
	require.NoError(t, err)
	require.InDelta(t, 1.5, got.Value(), 1e-12)

	_, err = q.Sub(New(units.Meters, 1))
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, err = ToAffine[units.Position](q)
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)

	_, ok := catalog.Lookup[units.Position](cat)
	require.True(t, ok)
}

func TestString(t *testing.T) {
	assert.Equal(t, "3.2 ft", New(units.Feet, 3.2).String())
	assert.Equal(t, "Δ-5 K", NewDifference(units.Kelvin, -5).String())
	assert.Equal(t, "1", New(nil, 1).String())
}
