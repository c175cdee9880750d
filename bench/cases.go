// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"

	"github.com/katalvlaran/tsplib/atsp"
	"github.com/katalvlaran/tsplib/tsplib"
)

// Case is one instance prepared for benchmarking.
type Case struct {
	// Problem is what the solvers see: the parsed instance, or its doubled
	// symmetric form when the config asks for symmetrization.
	Problem *tsplib.Problem

	// Original is the parsed instance; it equals Problem unless doubled.
	Original *tsplib.Problem

	// Offset is subtracted from every tour cost on Problem to obtain a length
	// on the Original scale. Zero unless the case was doubled.
	Offset float64
}

// Doubled reports whether Problem is the atsp.Double form of Original.
func (c Case) Doubled() bool { return c.Problem != c.Original }

// NewCase prepares p, doubling it when symmetrize is set and p is asymmetric.
// The best known value of p is assigned to the doubled problem shifted by the offset.
func NewCase(p *tsplib.Problem, symmetrize bool) (Case, error) {
	c := Case{Problem: p, Original: p}
	if !symmetrize || p.Symmetric() {
		return c, nil
	}

	sym, err := tsplib.ToSymmetric(p)
	if err != nil {
		return Case{}, err
	}
	offset, err := atsp.Offset(p.WeightMatrix())
	if err != nil {
		return Case{}, fmt.Errorf("bench: %s: %w", p.Name(), err)
	}
	if best, ok := p.Best(); ok {
		sym.SetBest(best + offset)
	}
	c.Problem, c.Offset = sym, offset

	return c, nil
}

// LoadCases parses every configured instance, assigns its best known value
// and prepares it with NewCase.
func LoadCases(cfg *Config) ([]Case, error) {
	cases := make([]Case, 0, len(cfg.Problems))
	for _, entry := range cfg.Problems {
		p, err := tsplib.ParseFile(entry.Path)
		if err != nil {
			return nil, fmt.Errorf("bench: %w", err)
		}
		if entry.Best > 0 {
			p.SetBest(entry.Best)
		}
		c, err := NewCase(p, cfg.Symmetrize)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, nil
}

// originalLength maps a result on c.Problem back to the Original scale.
// feasible is false when a doubled tour does not unfold to an original tour.
func (c Case) originalLength(tour []int, cost float64) (length float64, feasible bool) {
	if !c.Doubled() {
		return cost, true
	}
	if _, err := atsp.Unfold(tour, c.Original.Size()); err != nil {
		return cost - c.Offset, false
	}

	return cost - c.Offset, true
}
