package catalog

import (
	"fmt"

	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/fold"
	"github.com/arloliu/mensura/transform"
)

// Conversion returns the transform mapping values in from into values in to.
//
// The conversion always routes through the base unit: from.ToBase() followed by
// to.FromBase(). Identical units convert with the identity transform.
func Conversion[C Category](from, to *Unit[C]) transform.Transform {
	if from.Equal(to) {
		return transform.Identity()
	}

	return transform.Compose(from.toBase, to.fromBase)
}

// AnyConversion is the type-erased form of Conversion.
//
// Returns errs.ErrDimensionMismatch when the units belong to different
// categories.
func AnyConversion(from, to UnitInfo) (transform.Transform, error) {
	if from == nil || to == nil {
		return transform.Transform{}, fmt.Errorf("%w: nil unit", errs.ErrUnknownUnit)
	}

	if !fold.Equal(from.Category(), to.Category()) {
		return transform.Transform{}, fmt.Errorf("%w: cannot convert %s (%s) to %s (%s)",
			errs.ErrDimensionMismatch, from.Name(), from.Category(), to.Name(), to.Category())
	}

	if from.Name() == to.Name() {
		return transform.Identity(), nil
	}

	return transform.Compose(from.ToBase(), to.FromBase()), nil
}
