package units

import (
	"math"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/dimension"
	"github.com/arloliu/mensura/transform"
)

var defaultCatalog *catalog.Catalog

// Built-in measurement categories.
var (
	PositionMeasurement    *catalog.Measurement[Position]
	TimeMeasurement        *catalog.Measurement[Time]
	VelocityMeasurement    *catalog.Measurement[Velocity]
	TemperatureMeasurement *catalog.Measurement[Temperature]
	PressureMeasurement    *catalog.Measurement[Pressure]
	AngleMeasurement       *catalog.Measurement[Angle]
	CurrentMeasurement     *catalog.Measurement[Current]
	VoltageMeasurement     *catalog.Measurement[Voltage]
	FractionMeasurement    *catalog.Measurement[Fraction]
)

// Position units.
var (
	Meters      *catalog.Unit[Position]
	Kilometers  *catalog.Unit[Position]
	Centimeters *catalog.Unit[Position]
	Millimeters *catalog.Unit[Position]
	Inches      *catalog.Unit[Position]
	Feet        *catalog.Unit[Position]
	Yards       *catalog.Unit[Position]
	Miles       *catalog.Unit[Position]
)

// Time units.
var (
	Seconds      *catalog.Unit[Time]
	Milliseconds *catalog.Unit[Time]
	Minutes      *catalog.Unit[Time]
	Hours        *catalog.Unit[Time]
)

// Velocity units.
var (
	MetersPerSecond   *catalog.Unit[Velocity]
	KilometersPerHour *catalog.Unit[Velocity]
	MilesPerHour      *catalog.Unit[Velocity]
	FeetPerSecond     *catalog.Unit[Velocity]
	Knots             *catalog.Unit[Velocity]
)

// Temperature units.
var (
	Kelvin      *catalog.Unit[Temperature]
	Millikelvin *catalog.Unit[Temperature]
	Celsius     *catalog.Unit[Temperature]
	Fahrenheit  *catalog.Unit[Temperature]
	Rankine     *catalog.Unit[Temperature]
)

// Pressure units.
var (
	Pascals              *catalog.Unit[Pressure]
	Hectopascals         *catalog.Unit[Pressure]
	Kilopascals          *catalog.Unit[Pressure]
	Megapascals          *catalog.Unit[Pressure]
	Bars                 *catalog.Unit[Pressure]
	Millibars            *catalog.Unit[Pressure]
	Atmospheres          *catalog.Unit[Pressure]
	Psi                  *catalog.Unit[Pressure]
	Torr                 *catalog.Unit[Pressure]
	InchesOfMercury      *catalog.Unit[Pressure]
	MillimetersOfMercury *catalog.Unit[Pressure]
	InchesOfWater        *catalog.Unit[Pressure]
	CentimetersOfWater   *catalog.Unit[Pressure]
)

// Angle units.
var (
	Turns    *catalog.Unit[Angle]
	Radians  *catalog.Unit[Angle]
	Degrees  *catalog.Unit[Angle]
	Gradians *catalog.Unit[Angle]
)

// Current units.
var (
	Amperes      *catalog.Unit[Current]
	Milliamperes *catalog.Unit[Current]
	Microamperes *catalog.Unit[Current]
)

// Voltage units.
var (
	Volts      *catalog.Unit[Voltage]
	Millivolts *catalog.Unit[Voltage]
	Microvolts *catalog.Unit[Voltage]
	Kilovolts  *catalog.Unit[Voltage]
	Megavolts  *catalog.Unit[Voltage]
)

// Fraction units.
var (
	Ratio            *catalog.Unit[Fraction]
	Percent          *catalog.Unit[Fraction]
	Permille         *catalog.Unit[Fraction]
	PartsPerMillion  *catalog.Unit[Fraction]
	PartsPerBillion  *catalog.Unit[Fraction]
	PartsPerTrillion *catalog.Unit[Fraction]
)

func init() {
	defaultCatalog = register(mustBuilder())
}

func mustBuilder() *catalog.Builder {
	b, err := catalog.NewBuilder()
	if err != nil {
		panic(err)
	}

	return b
}

// Default returns the catalog holding the built-in categories.
func Default() *catalog.Catalog {
	return defaultCatalog
}

// NewBuilder returns a builder preloaded with the built-in dimensions and
// categories, ready for further definitions such as seed data. The built-in
// unit variables of this package keep referring to the default catalog.
func NewBuilder(opts ...catalog.Option) (*catalog.Builder, error) {
	b, err := catalog.NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	defineAll(b)

	return b, nil
}

// register defines the built-in categories in b, assigns the package unit
// variables and builds the catalog.
func register(b *catalog.Builder) *catalog.Catalog {
	assign(defineAll(b))
	return b.MustBuild()
}

type builtins struct {
	position    *catalog.Measurement[Position]
	time        *catalog.Measurement[Time]
	velocity    *catalog.Measurement[Velocity]
	temperature *catalog.Measurement[Temperature]
	pressure    *catalog.Measurement[Pressure]
	angle       *catalog.Measurement[Angle]
	current     *catalog.Measurement[Current]
	voltage     *catalog.Measurement[Voltage]
	fraction    *catalog.Measurement[Fraction]
}

func exps(powers map[rune]int) dimension.Exponents {
	return dimension.NewExponents(powers)
}

func defineAll(b *catalog.Builder) builtins {
	b.MustDefineDimension("Length", LengthSymbol)
	b.MustDefineDimension("Time", TimeSymbol)
	b.MustDefineDimension("Mass", MassSymbol)
	b.MustDefineDimension("Temperature", TemperatureSymbol)
	b.MustDefineDimension("Current", CurrentSymbol)

	var d builtins

	d.position = catalog.MustDefine[Position](b, PositionName, exps(map[rune]int{LengthSymbol: 1}), "Meter", "Meters", "m")
	d.position.MustDefineUnit("Kilometer", "Kilometers", transform.Scale(1e3), "km")
	d.position.MustDefineUnit("Centimeter", "Centimeters", transform.Scale(1e-2), "cm")
	d.position.MustDefineUnit("Millimeter", "Millimeters", transform.Scale(1e-3), "mm")
	d.position.MustDefineUnit("Inch", "Inches", transform.Scale(0.0254), "in", "\"")
	d.position.MustDefineUnit("Foot", "Feet", transform.Scale(0.3048), "ft", "'")
	d.position.MustDefineUnit("Yard", "Yards", transform.Scale(0.9144), "yd")
	d.position.MustDefineUnit("Mile", "Miles", transform.Scale(1609.344), "mi")

	d.time = catalog.MustDefine[Time](b, TimeName, exps(map[rune]int{TimeSymbol: 1}), "Second", "Seconds", "s", "sec")
	d.time.MustDefineUnit("Millisecond", "Milliseconds", transform.Scale(1e-3), "ms")
	d.time.MustDefineUnit("Minute", "Minutes", transform.Scale(60), "min")
	d.time.MustDefineUnit("Hour", "Hours", transform.Scale(3600), "h", "hr")

	d.velocity = catalog.MustDefine[Velocity](b, VelocityName, exps(map[rune]int{LengthSymbol: 1, TimeSymbol: -1}), "Meter per second", "Meters per second", "m/s")
	d.velocity.MustDefineUnit("Kilometer per hour", "Kilometers per hour", transform.Scale(1e3/3600), "km/h", "kph")
	d.velocity.MustDefineUnit("Mile per hour", "Miles per hour", transform.Scale(0.44704), "mph")
	d.velocity.MustDefineUnit("Foot per second", "Feet per second", transform.Scale(0.3048), "ft/s", "fps")
	d.velocity.MustDefineUnit("Knot", "Knots", transform.Scale(1852.0/3600), "kn", "kt")

	d.temperature = catalog.MustDefine[Temperature](b, TemperatureName, exps(map[rune]int{TemperatureSymbol: 1}), "Kelvin", "Kelvin", "K")
	d.temperature.MustDefineUnit("Millikelvin", "Millikelvin", transform.Scale(1e-3), "mK")
	d.temperature.MustDefineUnit("Celsius", "Celsius", transform.Affine(1, 273.15), "°C", "C")
	d.temperature.MustDefineUnit("Fahrenheit", "Fahrenheit", transform.Affine(5.0/9.0, 459.67*5.0/9.0), "°F", "F")
	d.temperature.MustDefineUnit("Rankine", "Rankine", transform.Scale(5.0/9.0), "°R", "R")

	d.pressure = catalog.MustDefine[Pressure](b, PressureName, exps(map[rune]int{MassSymbol: 1, LengthSymbol: -1, TimeSymbol: -2}), "Pascal", "Pascals", "Pa")
	d.pressure.MustDefineUnit("Hectopascal", "Hectopascals", transform.Scale(1e2), "hPa")
	d.pressure.MustDefineUnit("Kilopascal", "Kilopascals", transform.Scale(1e3), "kPa")
	d.pressure.MustDefineUnit("Megapascal", "Megapascals", transform.Scale(1e6), "MPa")
	d.pressure.MustDefineUnit("Bar", "Bars", transform.Scale(1e5), "bar")
	d.pressure.MustDefineUnit("Millibar", "Millibars", transform.Scale(1e2), "mbar")
	d.pressure.MustDefineUnit("Atmosphere", "Atmospheres", transform.Scale(101325), "atm")
	d.pressure.MustDefineUnit("Pound per square inch", "Pounds per square inch", transform.Scale(6894.757293168), "psi")
	d.pressure.MustDefineUnit("Torr", "Torr", transform.Scale(101325.0/760), "Torr")
	d.pressure.MustDefineUnit("Inch of mercury", "Inches of mercury", transform.Scale(3386.389), "inHg")
	d.pressure.MustDefineUnit("Millimeter of mercury", "Millimeters of mercury", transform.Scale(133.322387415), "mmHg")
	d.pressure.MustDefineUnit("Inch of water", "Inches of water", transform.Scale(249.08891), "inH2O")
	d.pressure.MustDefineUnit("Centimeter of water", "Centimeters of water", transform.Scale(98.0665), "cmH2O")

	d.angle = catalog.MustDefine[Angle](b, AngleName, dimension.Dimensionless(), "Turn", "Turns", "tr", "rev")
	d.angle.MustDefineUnit("Radian", "Radians", transform.Scale(1/(2*math.Pi)), "rad")
	d.angle.MustDefineUnit("Degree", "Degrees", transform.Scale(1.0/360), "°", "deg")
	d.angle.MustDefineUnit("Gradian", "Gradians", transform.Scale(1.0/400), "grad", "gon")

	d.current = catalog.MustDefine[Current](b, CurrentName, exps(map[rune]int{CurrentSymbol: 1}), "Ampere", "Amperes", "A")
	d.current.MustDefineUnit("Milliampere", "Milliamperes", transform.Scale(1e-3), "mA")
	d.current.MustDefineUnit("Microampere", "Microamperes", transform.Scale(1e-6), "µA", "uA")

	d.voltage = catalog.MustDefine[Voltage](b, VoltageName,
		exps(map[rune]int{MassSymbol: 1, LengthSymbol: 2, TimeSymbol: -3, CurrentSymbol: -1}), "Volt", "Volts", "V")
	d.voltage.MustDefineUnit("Millivolt", "Millivolts", transform.Scale(1e-3), "mV")
	d.voltage.MustDefineUnit("Microvolt", "Microvolts", transform.Scale(1e-6), "µV", "uV")
	d.voltage.MustDefineUnit("Kilovolt", "Kilovolts", transform.Scale(1e3), "kV")
	d.voltage.MustDefineUnit("Megavolt", "Megavolts", transform.Scale(1e6), "MV")

	d.fraction = catalog.MustDefine[Fraction](b, FractionName, dimension.Dimensionless(), "Ratio", "Ratio")
	d.fraction.MustDefineUnit("Percent", "Percent", transform.Scale(1e-2), "%")
	d.fraction.MustDefineUnit("Permille", "Permille", transform.Scale(1e-3), "‰")
	d.fraction.MustDefineUnit("Part per million", "Parts per million", transform.Scale(1e-6), "ppm")
	d.fraction.MustDefineUnit("Part per billion", "Parts per billion", transform.Scale(1e-9), "ppb")
	d.fraction.MustDefineUnit("Part per trillion", "Parts per trillion", transform.Scale(1e-12), "ppt")

	return d
}

func unit[C catalog.Category](m *catalog.Measurement[C], name string) *catalog.Unit[C] {
	u, ok := m.Unit(name)
	if !ok {
		panic("units: missing built-in unit " + name)
	}

	return u
}

func assign(d builtins) {
	PositionMeasurement = d.position
	Meters = d.position.Base()
	Kilometers = unit(d.position, "Kilometer")
	Centimeters = unit(d.position, "Centimeter")
	Millimeters = unit(d.position, "Millimeter")
	Inches = unit(d.position, "Inch")
	Feet = unit(d.position, "Foot")
	Yards = unit(d.position, "Yard")
	Miles = unit(d.position, "Mile")

	TimeMeasurement = d.time
	Seconds = d.time.Base()
	Milliseconds = unit(d.time, "Millisecond")
	Minutes = unit(d.time, "Minute")
	Hours = unit(d.time, "Hour")

	VelocityMeasurement = d.velocity
	MetersPerSecond = d.velocity.Base()
	KilometersPerHour = unit(d.velocity, "Kilometer per hour")
	MilesPerHour = unit(d.velocity, "Mile per hour")
	FeetPerSecond = unit(d.velocity, "Foot per second")
	Knots = unit(d.velocity, "Knot")

	TemperatureMeasurement = d.temperature
	Kelvin = d.temperature.Base()
	Millikelvin = unit(d.temperature, "Millikelvin")
	Celsius = unit(d.temperature, "Celsius")
	Fahrenheit = unit(d.temperature, "Fahrenheit")
	Rankine = unit(d.temperature, "Rankine")

	PressureMeasurement = d.pressure
	Pascals = d.pressure.Base()
	Hectopascals = unit(d.pressure, "Hectopascal")
	Kilopascals = unit(d.pressure, "Kilopascal")
	Megapascals = unit(d.pressure, "Megapascal")
	Bars = unit(d.pressure, "Bar")
	Millibars = unit(d.pressure, "Millibar")
	Atmospheres = unit(d.pressure, "Atmosphere")
	Psi = unit(d.pressure, "Pound per square inch")
	Torr = unit(d.pressure, "Torr")
	InchesOfMercury = unit(d.pressure, "Inch of mercury")
	MillimetersOfMercury = unit(d.pressure, "Millimeter of mercury")
	InchesOfWater = unit(d.pressure, "Inch of water")
	CentimetersOfWater = unit(d.pressure, "Centimeter of water")

	AngleMeasurement = d.angle
	Turns = d.angle.Base()
	Radians = unit(d.angle, "Radian")
	Degrees = unit(d.angle, "Degree")
	Gradians = unit(d.angle, "Gradian")

	CurrentMeasurement = d.current
	Amperes = d.current.Base()
	Milliamperes = unit(d.current, "Milliampere")
	Microamperes = unit(d.current, "Microampere")

	VoltageMeasurement = d.voltage
	Volts = d.voltage.Base()
	Millivolts = unit(d.voltage, "Millivolt")
	Microvolts = unit(d.voltage, "Microvolt")
	Kilovolts = unit(d.voltage, "Kilovolt")
	Megavolts = unit(d.voltage, "Megavolt")

	FractionMeasurement = d.fraction
	Ratio = d.fraction.Base()
	Percent = unit(d.fraction, "Percent")
	Permille = unit(d.fraction, "Permille")
	PartsPerMillion = unit(d.fraction, "Part per million")
	PartsPerBillion = unit(d.fraction, "Part per billion")
	PartsPerTrillion = unit(d.fraction, "Part per trillion")
}
