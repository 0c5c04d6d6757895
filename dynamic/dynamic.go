// Package dynamic provides scalar quantities whose units are only known at
// runtime, for example units loaded from seed data or parsed from text.
//
// It is a thin layer over the same conversion algebra as package quantity:
// units are catalog.UnitInfo values and conversions come from
// catalog.AnyConversion. Because categories are not part of the type, mixing
// them is detected at runtime and reported as errs.ErrDimensionMismatch.
package dynamic

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/quantity"
)

// Quantity is a scalar point in a runtime-resolved unit.
type Quantity struct {
	unit  catalog.UnitInfo
	value float64
}

// Difference is a scalar difference in a runtime-resolved unit.
type Difference struct {
	unit  catalog.UnitInfo
	value float64
}

// New creates a quantity.
func New(unit catalog.UnitInfo, value float64) Quantity {
	return Quantity{unit: unit, value: value}
}

// NewDifference creates a difference.
func NewDifference(unit catalog.UnitInfo, value float64) Difference {
	return Difference{unit: unit, value: value}
}

// Parse reads a quantity such as "3.2 ft", "-40°C" or "12 Position/Foot" and
// resolves its unit in c with Catalog.FindUnit.
//
// Returns errs.ErrInvalidQuantity for malformed input and the errors of
// Catalog.FindUnit for unknown or ambiguous units.
func Parse(c *catalog.Catalog, s string) (Quantity, error) {
	num, ref, err := split(s)
	if err != nil {
		return Quantity{}, err
	}

	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %q: %v", errs.ErrInvalidQuantity, s, err)
	}

	unit, err := c.FindUnit(ref)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{unit: unit, value: value}, nil
}

func split(s string) (num, ref string, err error) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		num, ref = s[:i], strings.TrimSpace(s[i:])
	} else {
		i := strings.IndexFunc(s, func(r rune) bool {
			return !(unicode.IsDigit(r) || strings.ContainsRune("+-.eE", r))
		})
		if i > 0 {
			num, ref = s[:i], s[i:]
		}
	}

	if num == "" || ref == "" {
		return "", "", fmt.Errorf("%w: %q needs a number and a unit", errs.ErrInvalidQuantity, s)
	}

	return num, ref, nil
}

// FromAffine converts a typed rank-1 point into a Quantity.
func FromAffine[C catalog.Category](a quantity.Affine[C, quantity.Vec1]) Quantity {
	return Quantity{unit: a.Unit(), value: a.X()}
}

// ToAffine converts q into a typed rank-1 point of category C. It returns
// errs.ErrDimensionMismatch when q's unit does not belong to C.
func ToAffine[C catalog.Category](q Quantity) (quantity.Affine[C, quantity.Vec1], error) {
	u, ok := catalog.TypedUnit[C](q.unit)
	if !ok {
		return quantity.Affine[C, quantity.Vec1]{}, fmt.Errorf("%w: unit %s of %s", errs.ErrDimensionMismatch, name(q.unit), category(q.unit))
	}

	return quantity.NewAffine1(u, q.value), nil
}

// Value returns the numeric value.
func (q Quantity) Value() float64 {
	return q.value
}

// Unit returns the unit.
func (q Quantity) Unit() catalog.UnitInfo {
	return q.unit
}

// ConvertTo returns q expressed in unit.
func (q Quantity) ConvertTo(unit catalog.UnitInfo) (Quantity, error) {
	conv, err := catalog.AnyConversion(q.unit, unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{unit: unit, value: conv.Apply(q.value)}, nil
}

// Sub returns q - o in q's unit.
func (q Quantity) Sub(o Quantity) (Difference, error) {
	ov, err := o.ConvertTo(q.unit)
	if err != nil {
		return Difference{}, err
	}

	return Difference{unit: q.unit, value: q.value - ov.value}, nil
}

// Add returns q + d in q's unit.
func (q Quantity) Add(d Difference) (Quantity, error) {
	dv, err := d.ConvertTo(q.unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{unit: q.unit, value: q.value + dv.value}, nil
}

// SubDiff returns q - d in q's unit.
func (q Quantity) SubDiff(d Difference) (Quantity, error) {
	dv, err := d.ConvertTo(q.unit)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{unit: q.unit, value: q.value - dv.value}, nil
}

// String formats q as "3.2 ft".
func (q Quantity) String() string {
	return format(q.value, q.unit)
}

// Value returns the numeric value.
func (d Difference) Value() float64 {
	return d.value
}

// Unit returns the unit.
func (d Difference) Unit() catalog.UnitInfo {
	return d.unit
}

// ConvertTo returns d expressed in unit using the full conversion.
func (d Difference) ConvertTo(unit catalog.UnitInfo) (Difference, error) {
	conv, err := catalog.AnyConversion(d.unit, unit)
	if err != nil {
		return Difference{}, err
	}

	return Difference{unit: unit, value: conv.Apply(d.value)}, nil
}

// ConvertDisplacement returns d expressed in unit using the displacement part
// of the conversion.
func (d Difference) ConvertDisplacement(unit catalog.UnitInfo) (Difference, error) {
	conv, err := catalog.AnyConversion(d.unit, unit)
	if err != nil {
		return Difference{}, err
	}

	return Difference{unit: unit, value: conv.Displacement().Apply(d.value)}, nil
}

// Add returns d + o in d's unit.
func (d Difference) Add(o Difference) (Difference, error) {
	ov, err := o.ConvertTo(d.unit)
	if err != nil {
		return Difference{}, err
	}

	return Difference{unit: d.unit, value: d.value + ov.value}, nil
}

// Sub returns d - o in d's unit.
func (d Difference) Sub(o Difference) (Difference, error) {
	ov, err := o.ConvertTo(d.unit)
	if err != nil {
		return Difference{}, err
	}

	return Difference{unit: d.unit, value: d.value - ov.value}, nil
}

// Scale returns d multiplied by k.
func (d Difference) Scale(k float64) Difference {
	return Difference{unit: d.unit, value: d.value * k}
}

// Neg returns -d.
func (d Difference) Neg() Difference {
	return Difference{unit: d.unit, value: -d.value}
}

// Magnitude returns |d|.
func (d Difference) Magnitude() Difference {
	return Difference{unit: d.unit, value: math.Abs(d.value)}
}

// String formats d as "Δ3.2 ft".
func (d Difference) String() string {
	return "Δ" + format(d.value, d.unit)
}

func format(v float64, u catalog.UnitInfo) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if u == nil {
		return s
	}
	if syms := u.Symbols(); len(syms) > 0 {
		return s + " " + syms[0]
	}

	return s + " " + u.Name()
}

func name(u catalog.UnitInfo) string {
	if u == nil {
		return "<nil>"
	}

	return u.Name()
}

func category(u catalog.UnitInfo) string {
	if u == nil {
		return "<nil>"
	}

	return u.Category()
}
