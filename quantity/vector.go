package quantity

import (
	"strconv"
	"strings"

	"github.com/arloliu/mensura/transform"
)

// Vector is the constraint satisfied by component arrays of rank 1 to 5.
type Vector interface {
	[1]float64 | [2]float64 | [3]float64 | [4]float64 | [5]float64
}

// Component arrays by rank.
type (
	Vec1 = [1]float64
	Vec2 = [2]float64
	Vec3 = [3]float64
	Vec4 = [4]float64
	Vec5 = [5]float64
)

// MaxRank is the largest supported number of components.
const MaxRank = 5

// Rank returns the number of components of V.
func Rank[V Vector]() int {
	var v V
	return len(v)
}

func mapVec[V Vector](v V, t transform.Transform) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = t.Apply(v[i])
	}

	return out
}

func addVec[V Vector](a, b V) V {
	var out V
	for i := 0; i < len(a); i++ {
		out[i] = a[i] + b[i]
	}

	return out
}

func subVec[V Vector](a, b V) V {
	var out V
	for i := 0; i < len(a); i++ {
		out[i] = a[i] - b[i]
	}

	return out
}

func scaleVec[V Vector](v V, k float64) V {
	var out V
	for i := 0; i < len(v); i++ {
		out[i] = v[i] * k
	}

	return out
}

func dotVec[V Vector](a, b V) float64 {
	var sum float64
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum
}

func sliceOf[V Vector](v V) []float64 {
	out := make([]float64, len(v))
	for i := range out {
		out[i] = v[i]
	}

	return out
}

// FromSlice copies the components of s into a V. It reports false when the
// length of s differs from the rank of V.
func FromSlice[V Vector](s []float64) (V, bool) {
	var out V
	if len(s) != len(out) {
		return out, false
	}
	for i := range s {
		out[i] = s[i]
	}

	return out, true
}

func approxEqualVec[V Vector](a, b V, tol float64) bool {
	for i := 0; i < len(a); i++ {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if !(d <= tol) {
			return false
		}
	}

	return true
}

func formatVec[V Vector](v V, symbol string) string {
	var sb strings.Builder
	if len(v) == 1 {
		sb.WriteString(strconv.FormatFloat(v[0], 'g', -1, 64))
	} else {
		sb.WriteByte('(')
		for i := 0; i < len(v); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(v[i], 'g', -1, 64))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(' ')
	sb.WriteString(symbol)

	return sb.String()
}
