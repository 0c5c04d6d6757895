package mensura_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/mensura"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/quantity"
	"github.com/arloliu/mensura/transform"
	"github.com/arloliu/mensura/units"
)

func TestConvert(t *testing.T) {
	v, err := mensura.Convert(100, "Celsius", "°F")
	require.NoError(t, err)
	require.InDelta(t, 212, v, 1e-9)

	v, err = mensura.Convert(1, "mi", "Feet")
	require.NoError(t, err)
	require.InDelta(t, 5280, v, 1e-9)

	v, err = mensura.Convert(3, "Position/Meter", "m")
	require.NoError(t, err)
	require.Equal(t, 3.0, v)

	_, err = mensura.Convert(1, "parsec", "m")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
	_, err = mensura.Convert(1, "m", "lightyear")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
	_, err = mensura.Convert(1, "m", "s")
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestConvertDifference(t *testing.T) {
	v, err := mensura.ConvertDifference(10, "K", "°F")
	require.NoError(t, err)
	require.InDelta(t, 18, v, 1e-9)

	v, err = mensura.ConvertDifference(10, "°C", "K")
	require.NoError(t, err)
	require.InDelta(t, 10, v, 1e-9)

	_, err = mensura.ConvertDifference(1, "V", "A")
	require.ErrorIs(t, err, errs.ErrDimensionMismatch)
}

func TestParse(t *testing.T) {
	q, err := mensura.Parse("-40 °C")
	require.NoError(t, err)
	require.Equal(t, "Celsius", q.Unit().Name())

	f, err := mensura.Default().FindUnit("°F")
	require.NoError(t, err)
	inF, err := q.ConvertTo(f)
	require.NoError(t, err)
	require.InDelta(t, -40, inF.Value(), 1e-9)

	_, err = mensura.Parse("forty kelvin")
	require.ErrorIs(t, err, errs.ErrInvalidQuantity)
}

func TestUnitID(t *testing.T) {
	require.Equal(t, units.Feet.ID(), mensura.UnitID(units.PositionName, "Foot"))
	require.Equal(t, units.Feet.ID(), mensura.UnitID("position", "Foot"))
	require.NotEqual(t, units.Feet.ID(), mensura.UnitID(units.PositionName, "Feet"))
}

func TestAliases(t *testing.T) {
	var a mensura.Affine[units.Position, quantity.Vec2] = quantity.NewAffine2(units.Meters, 1, 2)
	var d mensura.Diff[units.Position, quantity.Vec2] = a.Sub(quantity.Origin[units.Position, quantity.Vec2](units.Meters))

	require.Equal(t, quantity.Vec2{1, 2}, d.Vector())
}

func TestNewBuilder(t *testing.T) {
	b, err := mensura.NewBuilder()
	require.NoError(t, err)

	pos, ok := b.Measurement(units.PositionName)
	require.True(t, ok)
	_, err = pos.AddUnit("Furlong", "Furlongs", transform.Scale(201.168), "fur")
	require.NoError(t, err)

	cat, err := b.Build()
	require.NoError(t, err)

	_, err = cat.FindUnit("fur")
	require.NoError(t, err)

	_, err = mensura.Default().FindUnit("fur")
	require.ErrorIs(t, err, errs.ErrUnknownUnit)
}

func Example() {
	boiling := quantity.NewAffine1(units.Celsius, 100)
	fmt.Printf("%.2f\n", boiling.ConvertTo(units.Fahrenheit).X())

	p := quantity.NewAffine3(units.Feet, 3, 4, 0)
	d := p.Sub(quantity.Origin[units.Position, quantity.Vec3](units.Feet))
	fmt.Printf("%.1f\n", d.Magnitude().X())

	change := quantity.NewDiff1(units.Kelvin, 10)
	fmt.Printf("%.2f\n", change.ConvertDisplacement(units.Fahrenheit).X())
	// Output:
	// 212.00
	// 5.0
	// 18.00
}

func ExampleConvert() {
	v, err := mensura.Convert(72, "°F", "°C")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", v)
	// Output: 22.22
}

func ExampleConvertDifference() {
	v, err := mensura.ConvertDifference(10, "K", "°F")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.2f\n", v)
	// Output: 18.00
}

func ExampleParse() {
	q, err := mensura.Parse("3.2 ft")
	if err != nil {
		panic(err)
	}

	m, err := mensura.Default().FindUnit("m")
	if err != nil {
		panic(err)
	}
	inMeters, err := q.ConvertTo(m)
	if err != nil {
		panic(err)
	}

	fmt.Println(q.Unit().Name(), q.Value())
	fmt.Printf("%.4f %s\n", inMeters.Value(), inMeters.Unit().Name())
	// Output:
	// Foot 3.2
	// 0.9754 Meter
}
