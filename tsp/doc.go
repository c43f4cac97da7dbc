// Package tsp provides Travelling Salesman Problem solvers over small to
// moderate complete weighted graphs.
//
// Every solver returns a closed tour that starts and ends at vertex 0 and
// visits every other vertex exactly once, together with its cost.
//
// Solvers:
//
//   - TSPHeldKarp: exact Held–Karp dynamic programming over subsets, built
//     bottom-up in a SubsetTable keyed by bitset.BitSet values.
//     O(n²·2ⁿ) time, O(n·2ⁿ) memory; intended for n ≲ 20. Layers of equal
//     subset size may be filled by several workers.
//   - TSPBranchAndBound: best-first search over partial tours bounded by
//     reduced-cost matrices, with a frontier-width cap. NoFrontierCap makes
//     it exact; a finite cap turns it into a beam search whose cost is never
//     below the optimum and which may exhaust.
//   - TSPNearestNeighbor: greedy O(n²) heuristic, optionally polished by
//     TwoOpt and ThreeOpt.
//   - TSPBruteForce: permutation enumeration, used as an oracle (n ≤ 12).
//   - TSPChristofides: spanning tree + greedy odd-vertex matching + Euler
//     walk shortcut, for symmetric graphs; O(n²).
//
// Local search and bounds:
//
//   - TwoOpt, ThreeOpt: first-improvement tour improvement; ThreeOpt falls
//     back to orientation-preserving segment swaps on asymmetric weights.
//   - OneTreeLowerBound: Held–Karp 1-tree bound with subgradient ascent for
//     symmetric graphs too large for an exact optimum.
//
// Solve dispatches on Options.Algo. Inputs are supplied through the Graph
// interface; NewMatrixGraph adapts any square matrix.Matrix. A weight of
// +Inf, or a provider error, marks a missing edge.
//
// Errors are package sentinels (see types.go); match them with errors.Is.
// No solver panics on user input, logs unless Options.Logger is set, or
// returns a partial result on failure.
package tsp
