package quantity

import (
	"math"
	"sync/atomic"
)

// norms memoizes the square magnitude and magnitude of a Diff. Copies of a
// Diff share one cell; the components never change so the cell is never
// invalidated. Racing readers may both compute a value, and the last store
// wins with an identical result.
type norms struct {
	sq  atomic.Pointer[float64]
	mag atomic.Pointer[float64]
}

func newNorms() *norms {
	return &norms{}
}

func (n *norms) squareMagnitude(compute func() float64) float64 {
	if n == nil {
		return compute()
	}
	if p := n.sq.Load(); p != nil {
		return *p
	}

	v := compute()
	n.sq.Store(&v)

	return v
}

func (n *norms) magnitude(compute func() float64) float64 {
	if n == nil {
		return math.Sqrt(compute())
	}
	if p := n.mag.Load(); p != nil {
		return *p
	}

	v := math.Sqrt(n.squareMagnitude(compute))
	n.mag.Store(&v)

	return v
}

func (n *norms) cached() (sq, mag bool) {
	if n == nil {
		return false, false
	}

	return n.sq.Load() != nil, n.mag.Load() != nil
}
