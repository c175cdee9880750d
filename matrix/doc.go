// SPDX-License-Identifier: MIT

// Package matrix provides the dense square storage behind TSPLIB weight matrices.
//
// The matrix package provides:
//
//   - Matrix, a minimal read/write interface over a two-dimensional float64 grid.
//   - Dense, a row-major implementation with O(1) bounds-checked At/Set and a
//     no-copy RawRowView for hot read paths (weight lookups, neighbour scans).
//   - Validators for the structural rules weight matrices obey (square shape,
//     zero diagonal, finite non-negative entries, optional symmetry).
//
// Public accessors never panic on user input; they return the sentinel errors
// from errors.go wrapped with method context. RawRowView is the single
// exception and behaves like a plain slice expression.
package matrix
