// SPDX-License-Identifier: MIT

package tsplib

import (
	"fmt"

	"github.com/katalvlaran/tsplib/atsp"
	"github.com/katalvlaran/tsplib/matrix"
)

// symSuffix is appended to the name of a symmetrized instance.
const symSuffix = "(SYM)"

// Converter turns an asymmetric weight matrix into a symmetric one, usually of twice the size.
type Converter func(weights matrix.Matrix) (*matrix.Dense, error)

// ToSymmetric is ToSymmetricWith(p, atsp.Double).
func ToSymmetric(p *Problem) (*Problem, error) {
	return ToSymmetricWith(p, atsp.Double)
}

// ToSymmetricWith returns p itself when it is already symmetric. Otherwise it
// converts the weights with conv and returns a new EXPLICIT TSP problem named
// "<name>(SYM)" with the same comment. The best known value is not carried
// over: the converted instance measures tours on a different scale.
func ToSymmetricWith(p *Problem, conv Converter) (*Problem, error) {
	if p.Symmetric() {
		return p, nil
	}

	weights, err := conv(p.WeightMatrix())
	if err != nil {
		return nil, fmt.Errorf("tsplib: symmetrize %s: %w", p.Name(), err)
	}

	sym, err := New(p.Name()+symSuffix, p.Comment(), weights, WeightExplicit, TypeTSP)
	if err != nil {
		return nil, fmt.Errorf("tsplib: symmetrize %s: %w", p.Name(), err)
	}

	return sym, nil
}
