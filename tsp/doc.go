// SPDX-License-Identifier: MIT

// Package tsp defines the capability surface solvers are written against
// and a couple of small reference solvers.
//
// A solver never sees a concrete instance type; it consumes a Problem:
//
//   - Size, Weight(from, to): the dense cost function.
//   - Symmetric: the declared problem type (it is a label, not a check).
//   - First, Last: fixed start/end node of the closed tour.
//   - Neighbours(v): the cached candidate list of up to ten closest nodes.
//
// tsplib.Problem is the implementer shipped with this module.
//
// Tours are closed index sequences: for n nodes, len(Tour) == n+1 and
// Tour[0] == Tour[n] == First().
//
// Reference solvers:
//
//   - NearestNeighbour: greedy construction over the candidate lists. O(n·k) typical, O(n²) worst.
//   - TwoOpt: first-improvement 2-opt on top of NearestNeighbour. O(iter·n²) for symmetric
//     instances; asymmetric instances pay O(n) per candidate for the reversed segment.
package tsp
