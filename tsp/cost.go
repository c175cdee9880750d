// SPDX-License-Identifier: MIT

// Package tsp: cost utilities shared by solvers.
//
// Design:
//   - Strict sentinels from types.go on any invalid input.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
package tsp

import "math"

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums p.Weight along the closed tour tour[i]→tour[i+1].
//
// Contract:
//   - len(tour) >= 2 and every index within [0..Size()-1].
//   - Returns ErrDimensionMismatch, ErrIncompleteGraph or ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(p Problem, tour []int) (float64, error) {
	if p == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}

	var (
		sum float64
		i   int
		u   int
		v   int
		w   float64
		n   = p.Size()
		L   = len(tour) - 1 // last index used as closing
	)
	for i = 0; i < L; i++ {
		u = tour[i]
		v = tour[i+1]

		// Index range checks.
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}

		w = p.Weight(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}

		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
