package quantity

import (
	"github.com/arloliu/mensura/catalog"
)

// Affine is a point of rank len(V) measured in a unit of category C.
type Affine[C catalog.Category, V Vector] struct {
	unit *catalog.Unit[C]
	v    V
}

// NewAffine creates a point from a component array.
func NewAffine[C catalog.Category, V Vector](unit *catalog.Unit[C], v V) Affine[C, V] {
	return Affine[C, V]{unit: unit, v: v}
}

// NewAffine1 creates a rank-1 point.
func NewAffine1[C catalog.Category](unit *catalog.Unit[C], x float64) Affine[C, Vec1] {
	return Affine[C, Vec1]{unit: unit, v: Vec1{x}}
}

// NewAffine2 creates a rank-2 point.
func NewAffine2[C catalog.Category](unit *catalog.Unit[C], x, y float64) Affine[C, Vec2] {
	return Affine[C, Vec2]{unit: unit, v: Vec2{x, y}}
}

// NewAffine3 creates a rank-3 point.
func NewAffine3[C catalog.Category](unit *catalog.Unit[C], x, y, z float64) Affine[C, Vec3] {
	return Affine[C, Vec3]{unit: unit, v: Vec3{x, y, z}}
}

// NewAffine4 creates a rank-4 point.
func NewAffine4[C catalog.Category](unit *catalog.Unit[C], x, y, z, w float64) Affine[C, Vec4] {
	return Affine[C, Vec4]{unit: unit, v: Vec4{x, y, z, w}}
}

// NewAffine5 creates a rank-5 point.
func NewAffine5[C catalog.Category](unit *catalog.Unit[C], x, y, z, w, u float64) Affine[C, Vec5] {
	return Affine[C, Vec5]{unit: unit, v: Vec5{x, y, z, w, u}}
}

// Origin returns the point with all components zero in unit.
func Origin[C catalog.Category, V Vector](unit *catalog.Unit[C]) Affine[C, V] {
	return Affine[C, V]{unit: unit}
}

// Unit returns the unit the components are expressed in.
func (a Affine[C, V]) Unit() *catalog.Unit[C] {
	return a.unit
}

// Vector returns the component array.
func (a Affine[C, V]) Vector() V {
	return a.v
}

// Components returns a copy of the components.
func (a Affine[C, V]) Components() []float64 {
	return sliceOf(a.v)
}

// At returns component i. It panics if i is out of range.
func (a Affine[C, V]) At(i int) float64 {
	return a.v[i]
}

// X returns the first component.
func (a Affine[C, V]) X() float64 {
	return a.v[0]
}

// Rank returns the number of components.
func (a Affine[C, V]) Rank() int {
	return len(a.v)
}

// ConvertTo returns the point expressed in unit. Each component is mapped by
// the full conversion transform, offsets included.
func (a Affine[C, V]) ConvertTo(unit *catalog.Unit[C]) Affine[C, V] {
	if a.unit.Equal(unit) {
		return Affine[C, V]{unit: unit, v: a.v}
	}

	return Affine[C, V]{unit: unit, v: mapVec(a.v, catalog.Conversion(a.unit, unit))}
}

// Sub returns the difference a - o in a's unit. o is converted into a's unit
// first when the units differ.
func (a Affine[C, V]) Sub(o Affine[C, V]) Diff[C, V] {
	ov := o.in(a.unit)
	return newDiff(a.unit, subVec(a.v, ov))
}

// Add returns the point a + d in a's unit.
func (a Affine[C, V]) Add(d Diff[C, V]) Affine[C, V] {
	return Affine[C, V]{unit: a.unit, v: addVec(a.v, d.in(a.unit))}
}

// SubDiff returns the point a - d in a's unit.
func (a Affine[C, V]) SubDiff(d Diff[C, V]) Affine[C, V] {
	return Affine[C, V]{unit: a.unit, v: subVec(a.v, d.in(a.unit))}
}

// SquaredDistance returns the squared Euclidean distance between a and o as a
// rank-1 difference in a's unit. It equals a.Sub(o).SquareMagnitude() but does
// not materialize the intermediate difference.
func (a Affine[C, V]) SquaredDistance(o Affine[C, V]) Diff[C, Vec1] {
	d := subVec(a.v, o.in(a.unit))
	return newDiff(a.unit, Vec1{dotVec(d, d)})
}

// Distance returns the Euclidean distance between a and o in a's unit.
func (a Affine[C, V]) Distance(o Affine[C, V]) Diff[C, Vec1] {
	return a.Sub(o).Magnitude()
}

// ApproxEqual reports whether every component of o, converted into a's unit,
// is within tol of the matching component of a.
func (a Affine[C, V]) ApproxEqual(o Affine[C, V], tol float64) bool {
	return approxEqualVec(a.v, o.in(a.unit), tol)
}

// String formats the point as "3.2 ft" or "(1, 2, 3) m".
func (a Affine[C, V]) String() string {
	return formatVec(a.v, symbolOf(a.unit))
}

func (a Affine[C, V]) in(unit *catalog.Unit[C]) V {
	if a.unit.Equal(unit) {
		return a.v
	}

	return mapVec(a.v, catalog.Conversion(a.unit, unit))
}

func symbolOf[C catalog.Category](u *catalog.Unit[C]) string {
	if u == nil {
		return "<nil>"
	}

	return u.Symbol()
}
