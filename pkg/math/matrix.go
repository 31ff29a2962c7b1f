package math

import (
	"errors"
	"math"
)

// ErrNotInvertible is returned when a matrix inverse is requested but the
// determinant is zero. Non-invertible transforms are rejected when they are
// assigned, never silently substituted.
var ErrNotInvertible = errors.New("math: matrix is not invertible")

// Matrix is a square float64 grid. Transform math uses 4x4 matrices;
// smaller sizes appear only as submatrices during cofactor expansion.
type Matrix [][]float64

// NewMatrix creates a matrix from rows. All rows must have the same length
// as the number of rows.
func NewMatrix(rows ...[]float64) Matrix {
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != len(rows) {
			panic("math: matrix rows must form a square grid")
		}
		m[i] = make([]float64, len(row))
		copy(m[i], row)
	}
	return m
}

// Identity returns the 4x4 identity matrix
func Identity() Matrix {
	return NewMatrix(
		[]float64{1, 0, 0, 0},
		[]float64{0, 1, 0, 0},
		[]float64{0, 0, 1, 0},
		[]float64{0, 0, 0, 1},
	)
}

// Size returns the matrix dimension
func (m Matrix) Size() int {
	return len(m)
}

// Mul returns the matrix product m * other
func (m Matrix) Mul(other Matrix) Matrix {
	size := m.Size()
	result := make(Matrix, size)
	for row := 0; row < size; row++ {
		result[row] = make([]float64, size)
		for col := 0; col < size; col++ {
			sum := 0.0
			for k := 0; k < size; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// MulTuple returns the matrix applied to a tuple
func (m Matrix) MulTuple(t Tuple) Tuple {
	components := [4]float64{t.X, t.Y, t.Z, t.W}
	var result [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row] += m[row][col] * components[col]
		}
	}
	return Tuple{result[0], result[1], result[2], result[3]}
}

// Transpose returns the matrix with rows and columns swapped
func (m Matrix) Transpose() Matrix {
	size := m.Size()
	result := make(Matrix, size)
	for row := 0; row < size; row++ {
		result[row] = make([]float64, size)
		for col := 0; col < size; col++ {
			result[row][col] = m[col][row]
		}
	}
	return result
}

// Submatrix returns the matrix with the given row and column removed
func (m Matrix) Submatrix(skipRow, skipCol int) Matrix {
	size := m.Size()
	result := make(Matrix, 0, size-1)
	for row := 0; row < size; row++ {
		if row == skipRow {
			continue
		}
		subRow := make([]float64, 0, size-1)
		for col := 0; col < size; col++ {
			if col == skipCol {
				continue
			}
			subRow = append(subRow, m[row][col])
		}
		result = append(result, subRow)
	}
	return result
}

// Minor returns the determinant of the submatrix at (row, col)
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col), negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the
// first row
func (m Matrix) Determinant() float64 {
	if m.Size() == 2 {
		return m[0][0]*m[1][1] - m[0][1]*m[1][0]
	}

	det := 0.0
	for col := 0; col < m.Size(); col++ {
		det += m[0][col] * m.Cofactor(0, col)
	}
	return det
}

// Invertible reports whether the matrix has an inverse
func (m Matrix) Invertible() bool {
	return math.Abs(m.Determinant()) >= Epsilon
}

// Inverse computes the inverse by the cofactor/adjugate method. Returns
// ErrNotInvertible when the determinant is zero.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return nil, ErrNotInvertible
	}

	size := m.Size()
	result := make(Matrix, size)
	for row := 0; row < size; row++ {
		result[row] = make([]float64, size)
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			// Transposed assignment folds the adjugate transpose into
			// the same pass
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices are equal within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.Size() != other.Size() {
		return false
	}
	for row := 0; row < m.Size(); row++ {
		for col := 0; col < m.Size(); col++ {
			if !Equals(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
