// Package quantity implements typed measured values of rank 1 to 5.
//
// Two kinds of quantity share one unit model:
//
//   - Affine is a point: a position, an instant, a temperature reading. Points
//     can be converted between units and subtracted from each other, but adding
//     two points is meaningless and not offered.
//   - Diff is a free vector: the difference between two points. Diffs form a
//     vector space and carry a lazily computed magnitude.
//
// Both types are parameterized by a measurement category marker C and a
// component array V ([1]float64 through [5]float64), so mixing categories or
// ranks is a compile-time error:
//
//	a := quantity.NewAffine1(units.Meters, 10)
//	b := quantity.NewAffine1(units.Feet, 3.2)
//	d := a.Sub(b) // Diff in meters: 9.02464
//
// When operands carry different units the right operand is converted into the
// left operand's unit first; results carry the left operand's unit. Points and
// differences are both converted with the full unit transform, so each
// converted component equals the transform applied to it. Diff.ConvertDisplacement
// drops the offset instead, so a 10 K difference becomes a 10 °C difference
// and an 18 °F difference.
//
// Values are immutable and safe for concurrent use.
package quantity
