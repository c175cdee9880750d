// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tsplib/tsp"
)

// ErrUnknownSolver is returned for a solver name with no registered constructor.
var ErrUnknownSolver = errors.New("bench: unknown solver")

// registry maps solver names to constructors. Solvers are value types, so a
// fresh instance per lookup keeps runs independent.
var registry = map[string]func() tsp.Solver{
	tsp.NearestNeighbour{}.Name(): func() tsp.Solver { return tsp.NearestNeighbour{} },
	tsp.TwoOpt{}.Name():           func() tsp.Solver { return tsp.TwoOpt{} },
}

// SolverNames returns the registered names in sorted order.
func SolverNames() []string {
	names := maps.Keys(registry)
	slices.Sort(names)

	return names
}

// SolverByName returns a new solver registered under name (case-insensitive).
func SolverByName(name string) (tsp.Solver, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownSolver, name, strings.Join(SolverNames(), ", "))
	}

	return ctor(), nil
}

// SolversByName resolves every name, failing on the first unknown one.
func SolversByName(names []string) ([]tsp.Solver, error) {
	out := make([]tsp.Solver, 0, len(names))
	for _, name := range names {
		s, err := SolverByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
