// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Policy:
//   - validateNaNInf controls whether Set() rejects NaN/Inf.
//   - Weight matrices built from TSPLIB data are always finite, so the
//     default is strict.
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)
