// SPDX-License-Identifier: MIT

// Package builder generates complete weighted graphs for the TSP solvers.
//
// Geometric generators place vertices as orb.Point values in the plane and
// weigh every pair by planar.Distance; the result is a symmetric
// *matrix.Dense with a zero diagonal, ready for tsp.NewMatrixGraph.
//
//   - Random(n):       uniform points in the unit square (needs WithSeed/WithRand).
//   - Circle(n):       n points evenly spaced on a circle; optimum CircleOptimum.
//   - Grid(rows,cols): unit-spaced lattice; optimum GridOptimum.
//   - Barbell(m):      two m-point circles joined across a bridge.
//   - RandomWeights(n): non-geometric complete graph whose weights come
//     from a WeightFn.
//
// The *Points variants return the coordinates themselves; DistanceMatrix
// turns any point set into a weight matrix.
//
// Option constructors (WithX) panic on meaningless values. Generators never
// panic; they return ErrTooFewVertices or ErrNeedRandSource wrapped with
// method context.
package builder
