// Package units provides the built-in measurement categories and their units.
//
// The default catalog is built once during package initialization and is
// read-only afterwards. Each category has a marker type used as the type
// parameter of catalog.Unit and the quantity types:
//
//	d := quantity.NewAffine1(units.Feet, 10)
//	m := d.ConvertTo(units.Meters) // 3.048 m
//
// Base units: Meter (Position), Second (Time), Meter per second (Velocity),
// Kelvin (Temperature), Pascal (Pressure), Turn (Angle), Ampere (Current),
// Volt (Voltage) and Ratio (Fraction).
package units
