package units

// Position tags lengths and positions along an axis.
type Position struct{}

// Time tags durations and instants.
type Time struct{}

// Velocity tags speeds.
type Velocity struct{}

// Temperature tags thermodynamic temperatures.
type Temperature struct{}

// Pressure tags pressures.
type Pressure struct{}

// Angle tags plane angles.
type Angle struct{}

// Current tags electric currents.
type Current struct{}

// Voltage tags electric potential differences.
type Voltage struct{}

// Fraction tags dimensionless ratios.
type Fraction struct{}

// Category names of the built-in measurements.
const (
	PositionName    = "Position"
	TimeName        = "Time"
	VelocityName    = "Velocity"
	TemperatureName = "Temperature"
	PressureName    = "Pressure"
	AngleName       = "Angle"
	CurrentName     = "Current"
	VoltageName     = "Voltage"
	FractionName    = "Fraction"
)

// Symbols of the built-in base dimensions.
const (
	LengthSymbol      = 'L'
	TimeSymbol        = 'T'
	MassSymbol        = 'M'
	TemperatureSymbol = 'Θ'
	CurrentSymbol     = 'I'
)
