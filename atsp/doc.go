// SPDX-License-Identifier: MIT

// Package atsp embeds an asymmetric instance into a symmetric one of twice
// the size (the classical Jonker–Volgenant reduction) and maps tours back.
//
// For n original nodes the doubled matrix has 2n nodes: node i keeps its
// index and its ghost is n+i. With M = Penalty(dist):
//
//	w(i, n+i)   = 0                 tie edge, always taken by an optimal tour
//	w(n+i, j)   = c(i, j) + M       arc i→j, for i != j (mirrored to w(j, n+i))
//	w(i, j)     = w(n+i, n+j) = 2n·M + 1   forbidden, for i != j
//	w(v, v)     = 0
//
// An optimal symmetric tour alternates nodes and ghosts, uses every tie edge
// and costs exactly cost(atsp tour) + Offset(dist).
package atsp
