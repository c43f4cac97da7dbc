// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/katalvlaran/hamilton/matrix"
)

// Random returns the distance matrix of RandomPoints(n).
func Random(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	return fromPoints(RandomPoints(n, opts...))
}

// Circle returns the distance matrix of CirclePoints(n).
func Circle(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	return fromPoints(CirclePoints(n, opts...))
}

// Grid returns the distance matrix of GridPoints(rows, cols).
func Grid(rows, cols int) (*matrix.Dense, error) {
	return fromPoints(GridPoints(rows, cols))
}

// Barbell returns the distance matrix of BarbellPoints(m).
func Barbell(m int, opts ...BuilderOption) (*matrix.Dense, error) {
	return fromPoints(BarbellPoints(m, opts...))
}

// RandomWeights returns an n×n symmetric matrix whose off-diagonal weights
// are drawn from the configured WeightFn (default From1To100WeightFn) in
// row-major upper-triangle order. Requires WithSeed or WithRand.
func RandomWeights(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, builderErrorf(methodRandomWeights, "n=%d (must be ≥ 1)", ErrTooFewVertices, n)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandomWeights, "n=%d", ErrNeedRandSource, n)
	}

	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, builderErrorf(methodRandomWeights, "n=%d", err, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = m.SetSymmetric(i, j, cfg.weightFn(cfg.rng)); err != nil {
				return nil, builderErrorf(methodRandomWeights, "(%d,%d)", err, i, j)
			}
		}
	}

	return m, nil
}

// CircleOptimum is the optimal tour length over CirclePoints(n) with radius
// r: the perimeter of the inscribed regular polygon, 2·n·r·sin(π/n).
// It is 0 for n ≤ 1.
func CircleOptimum(n int, r float64) float64 {
	if n <= 1 {
		return 0
	}

	return 2 * float64(n) * r * math.Sin(math.Pi/float64(n))
}

// GridOptimum is the optimal tour length over GridPoints(rows, cols):
//
//	a single row or column of k points: 2·(k−1)
//	rows·cols even:                     rows·cols
//	rows·cols odd:                      rows·cols − 1 + √2
func GridOptimum(rows, cols int) float64 {
	if rows < 1 || cols < 1 {
		return 0
	}
	if rows == 1 || cols == 1 {
		return 2 * float64(rows*cols-1)
	}
	if (rows*cols)%2 == 0 {
		return float64(rows * cols)
	}

	return float64(rows*cols) - 1 + math.Sqrt2
}

// fromPoints chains a point generator into DistanceMatrix.
func fromPoints(pts orb.MultiPoint, err error) (*matrix.Dense, error) {
	if err != nil {
		return nil, err
	}

	return DistanceMatrix(pts)
}
