// Package hamilton computes minimum-cost Hamiltonian cycles (travelling
// salesman tours) over small to moderate complete weighted graphs.
//
// 🚀 What is inside?
//
//   - Exact solvers: Held–Karp dynamic programming over vertex subsets and
//     best-first branch-and-bound with reduced-cost-matrix bounds
//   - A beam mode for branch-and-bound: cap the frontier width to trade
//     optimality for speed
//   - Heuristics and oracles: nearest neighbour and an MST-based
//     Christofides-style tour, both polished by 2-opt or 3-opt, brute
//     force, and a 1-tree lower bound for large symmetric graphs
//   - Generators: random, circle, grid and barbell point sets with known
//     optima where they exist
//   - A benchmark harness with YAML suites and Prometheus metrics
//
// Everything is organized under these subpackages:
//
//	bitset/        fixed-capacity 64-bit sets with subset algebra and iteration
//	matrix/        Matrix interface and row-major Dense storage
//	builder/       graph generators returning weight matrices
//	tsp/           solvers, SubsetTable, tour utilities and the Solve dispatcher
//	bench/         timing, correctness ratios, suites and metrics
//	cmd/hamilton/  command-line front end (solve, bench)
//
// Quick start:
//
//	m, _ := builder.Circle(10)
//	res, err := tsp.SolveMatrix(m, tsp.DefaultOptions())
//
// Install:
//
//	go get github.com/katalvlaran/hamilton
package hamilton
