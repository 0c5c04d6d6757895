// Package transform implements the conversion algebra used by mensura units.
//
// A Transform is a linear-fractional (Möbius) map
//
//	x ↦ (a·x + b) / (c·x + d)
//
// represented by the 2×2 matrix [[a, b], [c, d]]. Linear-fractional maps are
// closed under composition and inversion, so any chain of unit conversions
// collapses into a single Transform that can be applied to many values.
//
// The units shipped with mensura only use the affine subset (c = 0, d = 1):
//
//	transform.Scale(0.3048)          // feet -> meters
//	transform.Affine(1, 273.15)      // celsius -> kelvin
//
// # Equality
//
// Coefficient tuples that differ by a non-zero scalar factor denote the same
// map, and conversion chains routinely produce such scaled tuples. Equal and
// EqualWithin therefore compare transforms projectively: (a1·x+b1)(c2·x+d2) and
// (a2·x+b2)(c1·x+d1) must agree as polynomials, coefficient by coefficient,
// within an epsilon.
//
// # Degenerate Evaluation
//
// Apply never panics. When c·x + d evaluates to zero the result is ±Inf or NaN
// following IEEE 754 semantics; use DefinedAt or math.IsInf/math.IsNaN to detect
// it.
//
// # Thread Safety
//
// Transform and Matrix2x2 are immutable values and safe for concurrent use.
package transform
