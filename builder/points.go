// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/hamilton/matrix"
)

// Method tags for error context.
const (
	methodRandom        = "Random"
	methodCircle        = "Circle"
	methodGrid          = "Grid"
	methodBarbell       = "Barbell"
	methodRandomWeights = "RandomWeights"
	methodDistance      = "DistanceMatrix"
)

// RandomPoints returns n points drawn uniformly from the unit square.
// Requires WithSeed or WithRand.
// Complexity: O(n).
func RandomPoints(n int, opts ...BuilderOption) (orb.MultiPoint, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, builderErrorf(methodRandom, "n=%d (must be ≥ 1)", ErrTooFewVertices, n)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(methodRandom, "n=%d", ErrNeedRandSource, n)
	}

	pts := make(orb.MultiPoint, n)
	for i := range pts {
		pts[i] = orb.Point{cfg.rng.Float64(), cfg.rng.Float64()}
	}

	return pts, nil
}

// CirclePoints returns n points evenly spaced on a circle of radius
// WithRadius (default 1) centred at the origin, starting at (r, 0) and
// proceeding counter-clockwise.
func CirclePoints(n int, opts ...BuilderOption) (orb.MultiPoint, error) {
	cfg := newBuilderConfig(opts...)
	if n < 1 {
		return nil, builderErrorf(methodCircle, "n=%d (must be ≥ 1)", ErrTooFewVertices, n)
	}

	return ring(orb.Point{0, 0}, cfg.radius, n), nil
}

// GridPoints returns the rows×cols lattice with unit spacing in row-major
// order: vertex r*cols+c sits at (c, r).
func GridPoints(rows, cols int) (orb.MultiPoint, error) {
	if rows < 1 || cols < 1 {
		return nil, builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ 1)", ErrTooFewVertices, rows, cols)
	}

	pts := make(orb.MultiPoint, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			pts = append(pts, orb.Point{float64(c), float64(r)})
		}
	}

	return pts, nil
}

// BarbellPoints returns 2m points: m on a circle around the origin and m on
// a circle around (bridge, 0), both of radius WithRadius.
func BarbellPoints(m int, opts ...BuilderOption) (orb.MultiPoint, error) {
	cfg := newBuilderConfig(opts...)
	if m < 1 {
		return nil, builderErrorf(methodBarbell, "m=%d (must be ≥ 1)", ErrTooFewVertices, m)
	}

	pts := ring(orb.Point{0, 0}, cfg.radius, m)

	return append(pts, ring(orb.Point{cfg.bridge, 0}, cfg.radius, m)...), nil
}

// ring places n points evenly on a circle.
func ring(center orb.Point, r float64, n int) orb.MultiPoint {
	pts := make(orb.MultiPoint, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = orb.Point{center.X() + r*math.Cos(theta), center.Y() + r*math.Sin(theta)}
	}

	return pts
}

// DistanceMatrix returns the symmetric matrix of planar distances between
// every pair of pts.
// Complexity: O(n²).
func DistanceMatrix(pts orb.MultiPoint) (*matrix.Dense, error) {
	if len(pts) == 0 {
		return nil, builderErrorf(methodDistance, "empty point set", ErrTooFewVertices)
	}
	m, err := matrix.NewSquare(len(pts))
	if err != nil {
		return nil, builderErrorf(methodDistance, "n=%d", err, len(pts))
	}
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if err = m.SetSymmetric(i, j, planar.Distance(pts[i], pts[j])); err != nil {
				return nil, builderErrorf(methodDistance, "(%d,%d)", err, i, j)
			}
		}
	}

	return m, nil
}
