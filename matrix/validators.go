// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |m[i][j] − m[j][i]| ≤ tol over the strict upper
// triangle. Two +Inf entries in mirrored positions are considered equal.
// Complexity: O(n²).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if aij == aji {
				continue
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i][i]| ≤ tol for every i.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	var (
		i int
		v float64
	)
	for i = 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.IsNaN(v) || math.Abs(v) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}
