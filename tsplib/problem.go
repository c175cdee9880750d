// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/tsplib/matrix"
	"github.com/katalvlaran/tsplib/tsp"
)

// Problem is a parsed TSPLIB instance: metadata plus a dense size×size weight matrix.
//
// Invariants:
//   - weights is square with side Size().
//   - weights is never mutated after construction.
//   - the neighbour cache holds one slot per node, each filled at most once.
//
// A Problem must not be copied after first use.
type Problem struct {
	name        string
	comment     string
	size        int
	problemType ProblemType
	weightType  WeightType
	weights     *matrix.Dense

	mu      sync.RWMutex // guards best/hasBest
	best    float64
	hasBest bool

	neighbours []neighbourSlot
}

var _ tsp.Problem = (*Problem)(nil)

// New wraps a fully populated weight matrix into a Problem.
// The matrix is adopted, not copied; callers must not modify it afterwards.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf, matrix.ErrNegativeWeight.
// Complexity: O(n²) validation.
func New(name, comment string, weights *matrix.Dense, weightType WeightType, problemType ProblemType) (*Problem, error) {
	if err := matrix.ValidateSquare(weights); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	if err := matrix.ValidateDistances(weights); err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	n := weights.Rows()

	return &Problem{
		name:        name,
		comment:     comment,
		size:        n,
		problemType: problemType,
		weightType:  weightType,
		weights:     weights,
		neighbours:  make([]neighbourSlot, n),
	}, nil
}

// Name returns the NAME field.
func (p *Problem) Name() string { return p.name }

// Comment returns the COMMENT field.
func (p *Problem) Comment() string { return p.comment }

// Size returns the number of nodes.
func (p *Problem) Size() int { return p.size }

// Type returns the declared problem type.
func (p *Problem) Type() ProblemType { return p.problemType }

// WeightType returns how the weights were specified.
func (p *Problem) WeightType() WeightType { return p.weightType }

// WeightMatrix returns the backing matrix. It must be treated as read-only.
func (p *Problem) WeightMatrix() *matrix.Dense { return p.weights }

// Weight returns weights[from][to]. Out-of-range indices panic like a slice index.
// Complexity: O(1).
func (p *Problem) Weight(from, to int) float64 {
	return p.weights.RawRowView(from)[to]
}

// Symmetric reports whether the declared type is TSP. The matrix is not inspected.
func (p *Problem) Symmetric() bool { return p.problemType == TypeTSP }

// Euclidean is always true for TSPLIB-backed problems.
func (p *Problem) Euclidean() bool { return true }

// First returns the fixed start node (always 0).
func (p *Problem) First() int { return 0 }

// Last returns the fixed end node (always 0).
func (p *Problem) Last() int { return 0 }

// Best returns the externally assigned best known tour length, if any.
func (p *Problem) Best() (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.best, p.hasBest
}

// SetBest assigns the best known tour length.
func (p *Problem) SetBest(best float64) {
	p.mu.Lock()
	p.best, p.hasBest = best, true
	p.mu.Unlock()
}

// String returns a one-line summary for logs.
func (p *Problem) String() string {
	return fmt.Sprintf("%s (%s, %s, n=%d)", p.name, p.problemType, p.weightType, p.size)
}
