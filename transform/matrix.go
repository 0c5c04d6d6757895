package transform

// Matrix2x2 is a 2×2 matrix in row-major order:
//
//	| A11 A12 |
//	| A21 A22 |
type Matrix2x2 struct {
	A11, A12 float64
	A21, A22 float64
}

// IdentityMatrix returns the 2×2 identity matrix.
func IdentityMatrix() Matrix2x2 {
	return Matrix2x2{A11: 1, A22: 1}
}

// Mul returns the matrix product m·n.
func (m Matrix2x2) Mul(n Matrix2x2) Matrix2x2 {
	return Matrix2x2{
		A11: m.A11*n.A11 + m.A12*n.A21,
		A12: m.A11*n.A12 + m.A12*n.A22,
		A21: m.A21*n.A11 + m.A22*n.A21,
		A22: m.A21*n.A12 + m.A22*n.A22,
	}
}

// Determinant returns A11·A22 − A12·A21.
func (m Matrix2x2) Determinant() float64 {
	return m.A11*m.A22 - m.A12*m.A21
}

// Multiply returns the ordered product ms[0]·ms[1]·…·ms[n-1].
// It returns the identity matrix when ms is empty.
func Multiply(ms ...Matrix2x2) Matrix2x2 {
	if len(ms) == 0 {
		return IdentityMatrix()
	}

	acc := ms[0]
	for _, m := range ms[1:] {
		acc = acc.Mul(m)
	}

	return acc
}
