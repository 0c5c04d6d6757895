package transform

import (
	"math"
	"strconv"
	"strings"
)

// DefaultEpsilon is the tolerance used by Equal.
//
// The projective comparison multiplies coefficients, so the tolerance applies
// to products of coefficients rather than to the coefficients themselves.
const DefaultEpsilon = 1e-9

// Transform is the linear-fractional map x ↦ (A·x + B) / (C·x + D).
//
// The zero value is not a valid map (every evaluation divides by zero); use
// Identity, Scale, Affine or New.
type Transform struct {
	A, B, C, D float64
}

// New creates the transform x ↦ (a·x + b) / (c·x + d).
func New(a, b, c, d float64) Transform {
	return Transform{A: a, B: b, C: c, D: d}
}

// Identity returns the no-op transform.
func Identity() Transform {
	return Transform{A: 1, B: 0, C: 0, D: 1}
}

// Scale returns the pure scaling transform x ↦ k·x.
func Scale(k float64) Transform {
	return Transform{A: k, B: 0, C: 0, D: 1}
}

// Affine returns the offset-and-scale transform x ↦ scale·x + offset.
func Affine(scale, offset float64) Transform {
	return Transform{A: scale, B: offset, C: 0, D: 1}
}

// FromMatrix creates a transform from its matrix representation.
func FromMatrix(m Matrix2x2) Transform {
	return Transform{A: m.A11, B: m.A12, C: m.A21, D: m.A22}
}

// Matrix returns the matrix representation [[A, B], [C, D]].
func (t Transform) Matrix() Matrix2x2 {
	return Matrix2x2{A11: t.A, A12: t.B, A21: t.C, A22: t.D}
}

// Apply evaluates the transform at x.
//
// When C·x + D is zero the result is ±Inf or NaN; Apply never panics.
func (t Transform) Apply(x float64) float64 {
	return (t.A*x + t.B) / (t.C*x + t.D)
}

// DefinedAt reports whether the transform has a finite denominator at x.
func (t Transform) DefinedAt(x float64) bool {
	return t.C*x+t.D != 0
}

// Then returns the transform that applies t first and u second.
//
// It is equivalent to Compose(t, u).
func (t Transform) Then(u Transform) Transform {
	// Applying t then u corresponds to the matrix product U·T.
	return FromMatrix(u.Matrix().Mul(t.Matrix()))
}

// Compose reduces an ordered list of transforms left to right, so that
// Compose(t1, t2).Apply(x) == t2.Apply(t1.Apply(x)).
//
// Compose returns Identity for an empty list.
func Compose(ts ...Transform) Transform {
	if len(ts) == 0 {
		return Identity()
	}

	acc := ts[0]
	for _, t := range ts[1:] {
		acc = acc.Then(t)
	}

	return acc
}

// Inverse returns the algebraic inverse (D, −B, −C, A).
//
// The result is projectively equal to the inverse map; it is not rescaled by
// the determinant. A singular transform has no inverse and the returned
// transform is degenerate.
func (t Transform) Inverse() Transform {
	return Transform{A: t.D, B: -t.B, C: -t.C, D: t.A}
}

// Determinant returns A·D − B·C.
func (t Transform) Determinant() float64 {
	return t.A*t.D - t.B*t.C
}

// IsSingular reports whether the determinant is zero. Singular transforms map
// every point to a constant and cannot be inverted.
func (t Transform) IsSingular() bool {
	return t.Determinant() == 0
}

// IsAffine reports whether the transform is of the form x ↦ s·x + o.
func (t Transform) IsAffine() bool {
	return t.C == 0 && t.D != 0
}

// IsIdentity reports whether t is projectively equal to Identity.
func (t Transform) IsIdentity() bool {
	return t.Equal(Identity())
}

// Displacement returns the action of t on differences between two points.
//
// For an affine map x ↦ s·x + o two points differ by s times their original
// difference, so the displacement is Scale(s). A non-affine map has no
// translation-free form and Displacement returns t unchanged.
func (t Transform) Displacement() Transform {
	if !t.IsAffine() {
		return t
	}

	return Scale(t.A / t.D)
}

// Normalized returns the representative with every coefficient divided by the
// determinant. It is meant for display and debugging; equality is projective
// and does not depend on normalization.
//
// A singular transform normalizes to non-finite coefficients.
func (t Transform) Normalized() Transform {
	iDet := 1.0 / t.Determinant()
	return Transform{A: t.A * iDet, B: t.B * iDet, C: t.C * iDet, D: t.D * iDet}
}

// Equal reports whether t and u denote the same map within DefaultEpsilon.
func (t Transform) Equal(u Transform) bool {
	return t.EqualWithin(u, DefaultEpsilon)
}

// EqualWithin reports whether t and u denote the same map.
//
// Two maps are equal when (A1·x+B1)(C2·x+D2) − (A2·x+B2)(C1·x+D1) vanishes
// identically, i.e. when the coefficients of x², x and 1 are all within eps of
// zero. The coefficients are measured relative to maxAbs(t)·maxAbs(u), so
// tuples scaled by any non-zero constant compare equal and eps does not depend
// on the magnitude of the stored coefficients.
func (t Transform) EqualWithin(u Transform, eps float64) bool {
	s := t.maxAbs() * u.maxAbs()
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return t == u
	}

	return math.Abs(t.A*u.C-u.A*t.C)/s <= eps &&
		math.Abs(t.A*u.D+t.B*u.C-u.A*t.D-u.B*t.C)/s <= eps &&
		math.Abs(t.B*u.D-u.B*t.D)/s <= eps
}

func (t Transform) maxAbs() float64 {
	return max(math.Abs(t.A), math.Abs(t.B), math.Abs(t.C), math.Abs(t.D))
}

// String returns a debug form such as "(0.3048·x + 0)/(0·x + 1)".
func (t Transform) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(formatCoeff(t.A))
	sb.WriteString("·x + ")
	sb.WriteString(formatCoeff(t.B))
	sb.WriteString(")/(")
	sb.WriteString(formatCoeff(t.C))
	sb.WriteString("·x + ")
	sb.WriteString(formatCoeff(t.D))
	sb.WriteByte(')')

	return sb.String()
}

func formatCoeff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
