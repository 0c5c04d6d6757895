package quantity

import (
	"github.com/arloliu/mensura/catalog"
)

// Diff is a free vector of rank len(V) in a unit of category C, such as the
// difference between two points.
//
// The magnitude and square magnitude are computed on first use and cached.
// Copies of a Diff share the cache.
type Diff[C catalog.Category, V Vector] struct {
	unit  *catalog.Unit[C]
	v     V
	norms *norms
}

func newDiff[C catalog.Category, V Vector](unit *catalog.Unit[C], v V) Diff[C, V] {
	return Diff[C, V]{unit: unit, v: v, norms: newNorms()}
}

// NewDiff creates a difference from a component array.
func NewDiff[C catalog.Category, V Vector](unit *catalog.Unit[C], v V) Diff[C, V] {
	return newDiff(unit, v)
}

// NewDiff1 creates a rank-1 difference.
func NewDiff1[C catalog.Category](unit *catalog.Unit[C], x float64) Diff[C, Vec1] {
	return newDiff(unit, Vec1{x})
}

// NewDiff2 creates a rank-2 difference.
func NewDiff2[C catalog.Category](unit *catalog.Unit[C], x, y float64) Diff[C, Vec2] {
	return newDiff(unit, Vec2{x, y})
}

// NewDiff3 creates a rank-3 difference.
func NewDiff3[C catalog.Category](unit *catalog.Unit[C], x, y, z float64) Diff[C, Vec3] {
	return newDiff(unit, Vec3{x, y, z})
}

// NewDiff4 creates a rank-4 difference.
func NewDiff4[C catalog.Category](unit *catalog.Unit[C], x, y, z, w float64) Diff[C, Vec4] {
	return newDiff(unit, Vec4{x, y, z, w})
}

// NewDiff5 creates a rank-5 difference.
func NewDiff5[C catalog.Category](unit *catalog.Unit[C], x, y, z, w, u float64) Diff[C, Vec5] {
	return newDiff(unit, Vec5{x, y, z, w, u})
}

// Unit returns the unit the components are expressed in.
func (d Diff[C, V]) Unit() *catalog.Unit[C] {
	return d.unit
}

// Vector returns the component array.
func (d Diff[C, V]) Vector() V {
	return d.v
}

// Components returns a copy of the components.
func (d Diff[C, V]) Components() []float64 {
	return sliceOf(d.v)
}

// At returns component i. It panics if i is out of range.
func (d Diff[C, V]) At(i int) float64 {
	return d.v[i]
}

// X returns the first component.
func (d Diff[C, V]) X() float64 {
	return d.v[0]
}

// Rank returns the number of components.
func (d Diff[C, V]) Rank() int {
	return len(d.v)
}

// ConvertTo returns the difference expressed in unit. Every component is
// mapped through the full conversion, offset included, so a 10 °C difference
// converts to 283.15 K. Use ConvertDisplacement for the translation-free form.
func (d Diff[C, V]) ConvertTo(unit *catalog.Unit[C]) Diff[C, V] {
	if d.unit.Equal(unit) {
		return Diff[C, V]{unit: unit, v: d.v, norms: d.norms}
	}

	return newDiff(unit, d.in(unit))
}

// ConvertDisplacement returns the difference expressed in unit using only the
// displacement part of the conversion: a 10 °C difference is 10 K and 18 °F.
// Non-affine conversions apply unchanged.
func (d Diff[C, V]) ConvertDisplacement(unit *catalog.Unit[C]) Diff[C, V] {
	if d.unit.Equal(unit) {
		return Diff[C, V]{unit: unit, v: d.v, norms: d.norms}
	}

	return newDiff(unit, mapVec(d.v, catalog.Conversion(d.unit, unit).Displacement()))
}

// Add returns d + o in d's unit.
func (d Diff[C, V]) Add(o Diff[C, V]) Diff[C, V] {
	return newDiff(d.unit, addVec(d.v, o.in(d.unit)))
}

// Sub returns d - o in d's unit.
func (d Diff[C, V]) Sub(o Diff[C, V]) Diff[C, V] {
	return newDiff(d.unit, subVec(d.v, o.in(d.unit)))
}

// Scale returns d multiplied by k.
func (d Diff[C, V]) Scale(k float64) Diff[C, V] {
	return newDiff(d.unit, scaleVec(d.v, k))
}

// Div returns d divided by k. Division by zero yields non-finite components.
func (d Diff[C, V]) Div(k float64) Diff[C, V] {
	return newDiff(d.unit, scaleVec(d.v, 1/k))
}

// Neg returns -d.
func (d Diff[C, V]) Neg() Diff[C, V] {
	return newDiff(d.unit, scaleVec(d.v, -1))
}

// Dot returns the dot product of d and o, with o converted into d's unit.
func (d Diff[C, V]) Dot(o Diff[C, V]) float64 {
	return dotVec(d.v, o.in(d.unit))
}

// SquareMagnitude returns the sum of squared components as a rank-1 difference
// in d's unit. The value is computed once per difference.
func (d Diff[C, V]) SquareMagnitude() Diff[C, Vec1] {
	return newDiff(d.unit, Vec1{d.norms.squareMagnitude(d.squareSum)})
}

// Magnitude returns the Euclidean norm as a rank-1 difference in d's unit. The
// value is computed once per difference.
func (d Diff[C, V]) Magnitude() Diff[C, Vec1] {
	return newDiff(d.unit, Vec1{d.norms.magnitude(d.squareSum)})
}

// ApproxEqual reports whether every component of o, converted into d's unit,
// is within tol of the matching component of d.
func (d Diff[C, V]) ApproxEqual(o Diff[C, V], tol float64) bool {
	return approxEqualVec(d.v, o.in(d.unit), tol)
}

// String formats the difference as "Δ3.2 ft" or "Δ(1, 2, 3) m".
func (d Diff[C, V]) String() string {
	return "Δ" + formatVec(d.v, symbolOf(d.unit))
}

func (d Diff[C, V]) squareSum() float64 {
	return dotVec(d.v, d.v)
}

func (d Diff[C, V]) in(unit *catalog.Unit[C]) V {
	if d.unit.Equal(unit) {
		return d.v
	}

	return mapVec(d.v, catalog.Conversion(d.unit, unit))
}
