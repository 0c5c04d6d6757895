// Package dimension provides the base physical dimensions of a catalog and the
// exponent vectors that identify a measurement category.
//
// A Dimension is a base physical axis such as Length or Time, identified by an
// upper-case alphanumeric symbol ('L', 'T') and a case-insensitive text id
// ("Length", "Time"). Dimensions are registered once, into a Registry, and are
// never removed or updated.
//
// Exponents describe a measurement category as a product of powers of base
// dimensions. Velocity, for example, is L¹·T⁻¹:
//
//	velocity := dimension.NewExponents(map[rune]int{'L': 1, 'T': -1})
//	velocity.String() // "L·T^-1"
package dimension
