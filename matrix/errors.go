// SPDX-License-Identifier: MIT

// Every message is prefixed with "matrix: ..." for consistency. If context is
// essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the call site; callers
// still match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrRaggedRows indicates rows of unequal length in a [][]float64 literal.
	ErrRaggedRows = errors.New("matrix: ragged rows")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNonZeroDiagonal signals a diagonal entry outside the tolerance of 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within tolerance")
)
