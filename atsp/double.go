// SPDX-License-Identifier: MIT

package atsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tsplib/matrix"
)

// ErrBadTour is returned by Unfold for a tour that does not alternate nodes and ghosts.
var ErrBadTour = errors.New("atsp: tour is not an alternating doubled tour")

// Penalty returns M = 1 + Σ c(i,j) over all off-diagonal entries.
// M exceeds the cost of any tour of the original instance.
//
// Complexity: O(n²).
func Penalty(dist matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, fmt.Errorf("atsp: %w", err)
	}
	if err := matrix.ValidateDistances(dist); err != nil {
		return 0, fmt.Errorf("atsp: %w", err)
	}

	var (
		n    = dist.Rows()
		sum  float64
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, _ = dist.At(i, j) // indices are in range after ValidateSquare
			sum += v
		}
	}

	return sum + 1, nil
}

// Offset returns the constant n·M separating doubled tour costs from original ones.
// Complexity: O(n²).
func Offset(dist matrix.Matrix) (float64, error) {
	m, err := Penalty(dist)
	if err != nil {
		return 0, err
	}

	return float64(dist.Rows()) * m, nil
}

// forbidden returns the weight of node–node and ghost–ghost edges: higher than any
// alternating tour, which costs at most n·(M + max c) < 2nM.
func forbidden(n int, m float64) float64 {
	return 2*float64(n)*m + 1
}

// Double builds the 2n×2n symmetric matrix described in the package doc.
//
// Errors: matrix validation errors (nil, non-square, NaN/Inf, negative).
// Complexity: O(n²) time, O(4n²) space.
func Double(dist matrix.Matrix) (*matrix.Dense, error) {
	m, err := Penalty(dist)
	if err != nil {
		return nil, err
	}

	var (
		n    = dist.Rows()
		size = 2 * n
		inf  = forbidden(n, m)
		out  *matrix.Dense
		i, j int
		c    float64
	)
	if out, err = matrix.NewSquare(size); err != nil {
		return nil, err
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				// Tie edge between a node and its ghost; diagonals stay 0.
				_ = out.Set(i, n+i, 0)
				_ = out.Set(n+i, i, 0)
				continue
			}
			c, _ = dist.At(i, j)
			_ = out.Set(n+i, j, c+m)
			_ = out.Set(j, n+i, c+m)
			_ = out.Set(i, j, inf)
			_ = out.Set(n+i, n+j, inf)
		}
	}

	return out, nil
}

// Unfold maps a closed tour over the doubled instance (2n nodes, starting at
// node 0) back to a closed tour over the original n nodes starting at 0.
// The walking direction is chosen so that each node is followed by its own ghost.
//
// Errors: ErrBadTour when the tour does not alternate node/ghost with tie edges.
// Complexity: O(n).
func Unfold(tour []int, n int) ([]int, error) {
	if n <= 0 || len(tour) != 2*n+1 || tour[0] != 0 || tour[2*n] != 0 {
		return nil, ErrBadTour
	}

	// Orient the walk: forward if 0 is followed by its ghost, backward otherwise.
	var (
		size = 2 * n
		at   func(k int) int
	)
	switch {
	case tour[1] == n:
		at = func(k int) int { return tour[k] }
	case tour[size-1] == n:
		at = func(k int) int { return tour[size-k] }
	default:
		return nil, ErrBadTour
	}

	var (
		out  = make([]int, 0, n+1)
		seen = make([]bool, n)
		k    int
		u, g int
	)
	for k = 0; k < size; k += 2 {
		u, g = at(k), at(k+1)
		if u < 0 || u >= n || g != n+u || seen[u] {
			return nil, ErrBadTour
		}
		seen[u] = true
		out = append(out, u)
	}
	out = append(out, 0)

	return out, nil
}
