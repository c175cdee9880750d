// SPDX-License-Identifier: MIT

// Package tsplib reads and writes TSPLIB travelling-salesman instances and
// derives the artifacts solvers need from them.
//
// Supported grammar:
//
//	NAME: <string>
//	TYPE: TSP | ATSP
//	COMMENT: <string>
//	DIMENSION: <int>
//	EDGE_WEIGHT_TYPE: EXPLICIT | EUC_2D
//	EDGE_WEIGHT_SECTION      full matrix, row-major, any number of values per line
//	NODE_COORD_SECTION       "<index> <x> <y>" per line, taken in file order
//	EOF
//
// Keys accept an optional space before the colon; enumerated values are
// case-insensitive; other keys (EDGE_WEIGHT_FORMAT, DISPLAY_DATA_TYPE, ...)
// are ignored. Exactly one data section is required and DIMENSION, TYPE and
// EDGE_WEIGHT_TYPE must precede it.
//
// A Problem is immutable once built except for the externally assigned best
// known value and the lazily computed, per-node cached Neighbours lists.
// The cache is filled under a per-node sync.Once, so a Problem may be shared
// by concurrent solvers.
//
// Writer output is always EXPLICIT / FULL_MATRIX with weights truncated to
// integers, so Parse(Write(p)) reproduces p exactly only when every weight is
// already a non-negative integer.
package tsplib
