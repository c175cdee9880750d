// SPDX-License-Identifier: MIT

// Package tsp: 2-opt local search.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour.
//   - Symmetric problems: Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d),
//     with a=T[i−1], b=T[i], c=T[k], d=T[k+1]; O(1) per candidate.
//   - Asymmetric problems: reversing [i..k] flips every inner arc, so Δ also
//     carries Σ w(T[j+1],T[j]) − w(T[j],T[j+1]) over the segment; O(k−i) per candidate.
//
// Contracts:
//   - The start node stays fixed at positions 0 and n.
//   - ctx is checked every 2048 candidate evaluations.
package tsp

import "context"

// TwoOpt improves a NearestNeighbour tour with first-improvement 2-opt moves.
type TwoOpt struct {
	// MaxIters bounds the number of accepted moves; 0 means until local optimum.
	MaxIters int

	// Eps is the acceptance tolerance: a move is applied only when Δ < −Eps.
	Eps float64
}

var _ Solver = TwoOpt{}

// Name implements Solver.
func (TwoOpt) Name() string { return "2-opt" }

// Solve implements Solver.
func (s TwoOpt) Solve(ctx context.Context, p Problem) (TSResult, error) {
	init, err := nearestNeighbourTour(ctx, p)
	if err != nil {
		return TSResult{}, err
	}

	return s.Improve(ctx, p, init)
}

// Improve runs 2-opt from initTour and returns the improved tour (same start) and its cost.
// initTour must be a closed Hamiltonian cycle starting at p.First().
func (s TwoOpt) Improve(ctx context.Context, p Problem, initTour []int) (TSResult, error) {
	n := p.Size()
	if n < 2 {
		return TSResult{}, ErrTooSmall
	}
	if err := ValidateTour(initTour, n, p.First()); err != nil {
		return TSResult{}, err
	}

	// Current working tour (copy to keep the input immutable).
	cur := make([]int, n+1)
	copy(cur, initTour)

	eps := s.Eps
	if eps < 0 {
		eps = 0
	}

	var (
		accepted   int
		step       int
		symmetric  = p.Symmetric()
		a, b, c, d int
		i, k, j    int
		delta      float64
		improved   bool
	)
	for {
		improved = false

	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				step++
				if step&2047 == 0 {
					if err := ctx.Err(); err != nil {
						return TSResult{}, err
					}
				}

				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = p.Weight(a, c) + p.Weight(b, d) - p.Weight(a, b) - p.Weight(c, d)
				if !symmetric {
					for j = i; j < k; j++ {
						delta += p.Weight(cur[j+1], cur[j]) - p.Weight(cur[j], cur[j+1])
					}
				}
				if delta >= -eps {
					continue
				}

				reverseArcInPlace(cur, i, k)
				accepted++
				improved = true

				// First-improvement policy: restart scanning from the beginning.
				break scan
			}
		}

		if !improved || (s.MaxIters > 0 && accepted >= s.MaxIters) {
			break
		}
	}

	// Recompute instead of accumulating Δ to keep the cost exact.
	cost, err := TourCost(p, cur)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: cur, Cost: cost}, nil
}
