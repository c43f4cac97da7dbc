// SPDX-License-Identifier: MIT

// Package matrix provides the weight-matrix storage consumed by the TSP
// solvers and produced by the graph builders.
//
// The package offers:
//
//   - Matrix: a minimal bounds-checked interface over a mutable float64 grid.
//   - Dense: a row-major implementation backed by one flat slice.
//   - Validators: ValidateSquare, ValidateSymmetric, ValidateZeroDiagonal.
//
// Policy:
//   - At/Set never panic; invalid indices yield ErrIndexOutOfBounds.
//   - +Inf is a legal value and conventionally marks "no edge".
//   - Errors are package sentinels; compare with errors.Is.
package matrix
