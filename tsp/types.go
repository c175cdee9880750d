// SPDX-License-Identifier: MIT

package tsp

import (
	"context"
	"errors"
)

var (
	// ErrDimensionMismatch signals a tour or index shape inconsistent with the problem size.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when the fixed start node is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIncompleteGraph is returned when a tour uses a NaN/±Inf edge.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNegativeWeight is returned when a tour uses a negative edge.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrTooSmall is returned by solvers for instances with fewer than two nodes.
	ErrTooSmall = errors.New("tsp: problem needs at least two nodes")
)

// Neighbourhood is the candidate list of one node: up to ten other nodes in
// ascending weight order (ties by increasing index) and the largest admitted weight.
// Nodes aliases cached data and must be treated as read-only.
type Neighbourhood struct {
	Nodes []int
	Max   float64
}

// Len returns the number of candidates.
func (n Neighbourhood) Len() int { return len(n.Nodes) }

// Contains reports whether v is one of the candidates.
// Complexity: O(len(Nodes)).
func (n Neighbourhood) Contains(v int) bool {
	for _, u := range n.Nodes {
		if u == v {
			return true
		}
	}

	return false
}

// Problem is the read-only view of an instance that solvers consume.
type Problem interface {
	// Size returns the number of nodes.
	Size() int

	// Weight returns the cost of the arc from→to. Indices must be in [0..Size()-1].
	Weight(from, to int) float64

	// Symmetric reports whether the instance is declared symmetric.
	Symmetric() bool

	// First returns the node every tour starts at.
	First() int

	// Last returns the node every tour ends at.
	Last() int

	// Neighbours returns the cached candidate list of v.
	Neighbours(v int) Neighbourhood
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at First().
	// For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n].
	Tour []int

	// Cost is the total weight of the cycle.
	Cost float64
}

// Solver produces a closed tour for a Problem.
// Implementations must not mutate the problem and must honour ctx cancellation.
type Solver interface {
	// Name identifies the solver in benchmark reports.
	Name() string

	// Solve returns a tour and its cost.
	Solve(ctx context.Context, p Problem) (TSResult, error)
}
