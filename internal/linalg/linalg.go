// Package linalg provides the small dense matrix/vector kernel behind the
// closed-form value computation V = (I - γP)⁻¹R. Matrices are plain
// [][]float64 values; every operation returns a fresh result and leaves its
// inputs untouched. Elimination works on private copies.
package linalg

import (
	"errors"
	"fmt"
	"math"
)

// Mat is a dense real matrix stored row-major. Square for solving, but
// Scale and Subtract accept any rectangular shape.
type Mat [][]float64

// Vec is a dense real vector.
type Vec []float64

// DefaultPivotTol is the absolute pivot magnitude below which elimination
// treats the system as singular.
const DefaultPivotTol = 1e-12

var (
	// ErrShapeMismatch is returned when two matrices with incompatible
	// shapes are combined elementwise.
	ErrShapeMismatch = errors.New("linalg: shape mismatch")

	// ErrDimensionMismatch is returned when a vector's length does not
	// match the matrix dimension it is paired with.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrSingularMatrix is returned when the best available pivot falls
	// below tolerance during elimination.
	ErrSingularMatrix = errors.New("linalg: singular matrix")
)

// Identity returns the n×n identity matrix. n = 0 yields an empty matrix.
func Identity(n int) Mat {
	m := make(Mat, n)
	for i := range m {
		m[i] = make([]float64, n)
		m[i][i] = 1
	}
	return m
}

// Scale returns a new matrix with every entry of a multiplied by c.
func Scale(a Mat, c float64) Mat {
	out := make(Mat, len(a))
	for i, row := range a {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = c * v
		}
	}
	return out
}

// Subtract returns a - b elementwise. The operands must agree in row count
// and in every row's column count.
func Subtract(a, b Mat) (Mat, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("subtract %d rows with %d rows: %w", len(a), len(b), ErrShapeMismatch)
	}
	out := make(Mat, len(a))
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return nil, fmt.Errorf("subtract row %d: %d columns with %d columns: %w",
				i, len(a[i]), len(b[i]), ErrShapeMismatch)
		}
		out[i] = make([]float64, len(a[i]))
		for j := range a[i] {
			out[i][j] = a[i][j] - b[i][j]
		}
	}
	return out, nil
}

// MatVec returns the product a·x.
func MatVec(a Mat, x Vec) (Vec, error) {
	out := make(Vec, len(a))
	for i, row := range a {
		if len(row) != len(x) {
			return nil, fmt.Errorf("multiply row of %d columns with vector of length %d: %w",
				len(row), len(x), ErrDimensionMismatch)
		}
		var sum float64
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Solve solves a·x = b by Gaussian elimination with partial pivoting, using
// DefaultPivotTol as the singularity threshold.
func Solve(a Mat, b Vec) (Vec, error) {
	return SolveTol(a, b, DefaultPivotTol)
}

// SolveTol is Solve with an explicit pivot tolerance. The inputs are copied
// before elimination, so the caller's a and b are never modified.
func SolveTol(a Mat, b Vec, tol float64) (Vec, error) {
	n := len(a)
	if len(b) != n {
		return nil, fmt.Errorf("solve %d×%d system with vector of length %d: %w",
			n, n, len(b), ErrDimensionMismatch)
	}

	// working copies
	m := make(Mat, n)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("solve: row %d has %d columns, want %d: %w",
				i, len(row), n, ErrShapeMismatch)
		}
		m[i] = append([]float64(nil), row...)
	}
	rhs := append(Vec(nil), b...)

	for col := 0; col < n; col++ {
		// partial pivoting: bring the largest remaining entry into place
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < tol {
			return nil, fmt.Errorf("solve: pivot %g in column %d below tolerance %g: %w",
				m[pivot][col], col, tol, ErrSingularMatrix)
		}
		if pivot != col {
			m[pivot], m[col] = m[col], m[pivot]
			rhs[pivot], rhs[col] = rhs[col], rhs[pivot]
		}

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n; c++ {
				m[r][c] -= factor * m[col][c]
			}
			rhs[r] -= factor * rhs[col]
		}
	}

	x := make(Vec, n)
	for r := n - 1; r >= 0; r-- {
		sum := rhs[r]
		for c := r + 1; c < n; c++ {
			sum -= m[r][c] * x[c]
		}
		x[r] = sum / m[r][r]
	}
	return x, nil
}
