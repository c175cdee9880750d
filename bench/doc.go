// SPDX-License-Identifier: MIT

// Package bench runs tsp.Solver implementations over a set of TSPLIB
// instances and aggregates the resulting tour lengths.
//
// A benchmark is described by a Config (YAML or TOML): the instances with
// their best known tour lengths, the solver names, the number of runs per
// instance/solver pair and the worker pool size. Every run is one task on a
// bounded ants pool; all tasks of one instance share the same *tsplib.Problem,
// which is safe because its neighbour cache is filled per node under sync.Once.
//
// With Symmetrize set, asymmetric instances are doubled (atsp.Double) before
// solving. Lengths are still reported on the original scale: the constant
// atsp.Offset is subtracted, and runs whose doubled tour does not unfold to
// an original tour are counted as infeasible.
//
// The package logs through a caller-supplied *slog.Logger: one debug record
// per run and one info record per instance/solver summary.
package bench
