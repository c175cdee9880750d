// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"math"
)

// NearestNeighbour builds a tour greedily: from the current node it moves to
// the first unvisited node of the current node's candidate list and falls back
// to a full scan (lowest weight, ties by index) when every candidate is taken.
type NearestNeighbour struct{}

var _ Solver = NearestNeighbour{}

// Name implements Solver.
func (NearestNeighbour) Name() string { return "nearest-neighbour" }

// Solve implements Solver.
//
// Complexity: O(n·k) when candidate lists suffice, O(n²) worst case.
func (NearestNeighbour) Solve(ctx context.Context, p Problem) (TSResult, error) {
	tour, err := nearestNeighbourTour(ctx, p)
	if err != nil {
		return TSResult{}, err
	}
	cost, err := TourCost(p, tour)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}

// nearestNeighbourTour returns the closed greedy tour starting at p.First().
func nearestNeighbourTour(ctx context.Context, p Problem) ([]int, error) {
	n := p.Size()
	if n < 2 {
		return nil, ErrTooSmall
	}
	start := p.First()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		cur     = start
		next    int
		step    int
	)
	visited[cur] = true
	tour = append(tour, cur)

	for step = 1; step < n; step++ {
		if step&255 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		next = -1
		for _, v := range p.Neighbours(cur).Nodes {
			if !visited[v] {
				next = v
				break
			}
		}
		if next == -1 {
			next = closestUnvisited(p, cur, visited)
		}

		visited[next] = true
		tour = append(tour, next)
		cur = next
	}
	tour = append(tour, start)

	return tour, nil
}

// closestUnvisited scans all nodes for the cheapest unvisited successor of u.
// Complexity: O(n).
func closestUnvisited(p Problem, u int, visited []bool) int {
	var (
		best  = -1
		bestW = math.Inf(1)
		w     float64
		v     int
	)
	for v = 0; v < p.Size(); v++ {
		if visited[v] {
			continue
		}
		w = p.Weight(u, v)
		if best == -1 || w < bestW {
			best, bestW = v, w
		}
	}

	return best
}
