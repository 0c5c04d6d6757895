package batch

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/arloliu/mensura/catalog"
	"github.com/arloliu/mensura/errs"
	"github.com/arloliu/mensura/internal/options"
	"github.com/arloliu/mensura/quantity"
	"github.com/arloliu/mensura/transform"
)

// ConvertAll converts every point in src into target.
//
// All elements of src must share one unit. The transform from that unit to
// target is computed once and applied to each element.
//
// Parameters:
//   - src: points sharing one source unit
//   - target: unit of the same category
//   - opts: WithWorkers and WithChunkSize
//
// Returns:
//   - []quantity.Affine[C, V]: converted points, positionally matching src
//   - error: errs.ErrUnitMismatch if src mixes units, errs.ErrInvalidOption
//     for rejected options
//
// An empty src yields an empty result and no error.
func ConvertAll[C catalog.Category, V quantity.Vector](src []quantity.Affine[C, V], target *catalog.Unit[C], opts ...Option) ([]quantity.Affine[C, V], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	out := make([]quantity.Affine[C, V], len(src))
	if len(src) == 0 {
		return out, nil
	}

	from := src[0].Unit()
	for i := range src {
		if !src[i].Unit().Equal(from) {
			return nil, fmt.Errorf("%w: element %d is in %s, element 0 in %s", errs.ErrUnitMismatch, i, src[i].Unit(), from)
		}
	}

	conv := catalog.Conversion(from, target)
	run(cfg, len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = quantity.NewAffine(target, apply(conv, src[i].Vector()))
		}
	})

	return out, nil
}

// ConvertDiffs converts every difference in src into target. Each element
// matches quantity.Diff.ConvertTo, so the full conversion applies, offset
// included. The rules of ConvertAll apply.
func ConvertDiffs[C catalog.Category, V quantity.Vector](src []quantity.Diff[C, V], target *catalog.Unit[C], opts ...Option) ([]quantity.Diff[C, V], error) {
	return convertDiffs(src, target, false, opts)
}

// ConvertDisplacements is ConvertDiffs using only the displacement part of
// the conversion, matching quantity.Diff.ConvertDisplacement.
func ConvertDisplacements[C catalog.Category, V quantity.Vector](src []quantity.Diff[C, V], target *catalog.Unit[C], opts ...Option) ([]quantity.Diff[C, V], error) {
	return convertDiffs(src, target, true, opts)
}

func convertDiffs[C catalog.Category, V quantity.Vector](src []quantity.Diff[C, V], target *catalog.Unit[C], displacement bool, opts []Option) ([]quantity.Diff[C, V], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	out := make([]quantity.Diff[C, V], len(src))
	if len(src) == 0 {
		return out, nil
	}

	from := src[0].Unit()
	for i := range src {
		if !src[i].Unit().Equal(from) {
			return nil, fmt.Errorf("%w: element %d is in %s, element 0 in %s", errs.ErrUnitMismatch, i, src[i].Unit(), from)
		}
	}

	conv := catalog.Conversion(from, target)
	if displacement {
		conv = conv.Displacement()
	}
	run(cfg, len(src), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = quantity.NewDiff(target, apply(conv, src[i].Vector()))
		}
	})

	return out, nil
}

// ConvertValues converts raw scalar readings from one unit into another.
func ConvertValues[C catalog.Category](values []float64, from, to *catalog.Unit[C], opts ...Option) ([]float64, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(values))
	if len(values) == 0 {
		return out, nil
	}

	conv := catalog.Conversion(from, to)
	run(cfg, len(values), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			out[i] = conv.Apply(values[i])
		}
	})

	return out, nil
}

func newConfig(opts []Option) (*config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

func apply[V quantity.Vector](t transform.Transform, v V) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = t.Apply(v[i])
	}

	return out
}

// run calls fn over [0, n) split into chunks of cfg.chunkSize, with at most
// cfg.workers chunks in flight.
func run(cfg *config, n int, fn func(lo, hi int)) {
	if n <= cfg.chunkSize || cfg.workers == 1 {
		fn(0, n)
		return
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for lo := 0; lo < n; lo += cfg.chunkSize {
		hi := min(lo+cfg.chunkSize, n)
		g.Go(func() error {
			fn(lo, hi)
			return nil
		})
	}
	_ = g.Wait()
}
