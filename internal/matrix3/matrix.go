// Package matrix3 provides the 3x3 matrix primitive used by the RGB <-> XYZ
// transforms and chromatic adaptation.
package matrix3

import "math"

// Vec is a column vector of three components.
type Vec [3]float64

// Matrix is a 3x3 matrix in row-major order:
//
//	| m[0][0]  m[0][1]  m[0][2] |
//	| m[1][0]  m[1][1]  m[1][2] |
//	| m[2][0]  m[2][1]  m[2][2] |
type Matrix [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Diag returns a diagonal matrix with the given entries.
func Diag(a, b, c float64) Matrix {
	return Matrix{
		{a, 0, 0},
		{0, b, 0},
		{0, 0, c},
	}
}

// MulVec returns the matrix-vector product m*v.
func (m Matrix) MulVec(v Vec) Vec {
	return Vec{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

// Mul multiplies two matrices (m * other).
func (m Matrix) Mul(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*other[0][j] + m[i][1]*other[1][j] + m[i][2]*other[2][j]
		}
	}
	return r
}

// Det returns the determinant.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Inverse() Matrix {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) * invDet,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) * invDet,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) * invDet,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) * invDet,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
		},
	}
}

// Row returns row i as a vector.
func (m Matrix) Row(i int) Vec {
	return Vec(m[i])
}
