// Package solver computes the closed-form state values
// V = (I - γP)⁻¹R from the raw text the solve panel collects: a transition
// matrix as newline-separated rows of comma-separated numbers, a reward
// vector as comma-separated numbers, and a single discount token.
package solver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mdpkit/bellman/internal/linalg"
)

var (
	// ErrNonSquareMatrix is returned when the parsed transition matrix
	// is not square.
	ErrNonSquareMatrix = errors.New("solver: matrix is not square")

	// ErrVectorLengthMismatch is returned when the reward vector length
	// differs from the matrix dimension.
	ErrVectorLengthMismatch = errors.New("solver: vector length mismatch")

	// ErrBadNumber is returned when a numeric field fails to parse.
	ErrBadNumber = errors.New("solver: malformed number")
)

// ParseMatrix parses newline-separated rows of comma-separated numbers
// into a square matrix. Blank lines are skipped.
func ParseMatrix(text string) (linalg.Mat, error) {
	var m linalg.Mat
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := ParseVector(line)
		if err != nil {
			return nil, err
		}
		m = append(m, row)
	}
	for i, row := range m {
		if len(row) != len(m) {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(row), len(m), ErrNonSquareMatrix)
		}
	}
	return m, nil
}

// ParseVector parses a comma-separated list of numbers.
func ParseVector(text string) (linalg.Vec, error) {
	fields := strings.Split(text, ",")
	v := make(linalg.Vec, 0, len(fields))
	for _, field := range fields {
		x, err := ParseScalar(field)
		if err != nil {
			return nil, err
		}
		v = append(v, x)
	}
	return v, nil
}

// ParseScalar parses a single numeric token such as the discount factor.
func ParseScalar(text string) (float64, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", strings.TrimSpace(text), ErrBadNumber)
	}
	return x, nil
}

// Value solves (I - γP)·v = r with the default pivot tolerance.
func Value(p linalg.Mat, gamma float64, r linalg.Vec) (linalg.Vec, error) {
	return ValueTol(p, gamma, r, linalg.DefaultPivotTol)
}

// ValueTol is Value with an explicit pivot tolerance.
func ValueTol(p linalg.Mat, gamma float64, r linalg.Vec, tol float64) (linalg.Vec, error) {
	n := len(p)
	if len(r) != n {
		return nil, fmt.Errorf("reward vector has %d entries, matrix is %d×%d: %w",
			len(r), n, n, ErrVectorLengthMismatch)
	}
	a, err := linalg.Subtract(linalg.Identity(n), linalg.Scale(p, gamma))
	if err != nil {
		return nil, err
	}
	return linalg.SolveTol(a, r, tol)
}

// ValueFromText parses the three raw inputs and solves the system.
func ValueFromText(pText, gammaText, rText string) (linalg.Vec, error) {
	p, err := ParseMatrix(pText)
	if err != nil {
		return nil, err
	}
	gamma, err := ParseScalar(gammaText)
	if err != nil {
		return nil, err
	}
	r, err := ParseVector(rText)
	if err != nil {
		return nil, err
	}
	return Value(p, gamma, r)
}
