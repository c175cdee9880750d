// SPDX-License-Identifier: MIT

package tsplib

import "strings"

// ProblemType is the declared TYPE of an instance.
type ProblemType uint8

const (
	// TypeUnknown is the zero value: TYPE missing or not supported.
	TypeUnknown ProblemType = iota
	// TypeTSP is a symmetric instance.
	TypeTSP
	// TypeATSP is an asymmetric instance.
	TypeATSP
)

// String returns the TSPLIB token.
func (t ProblemType) String() string {
	switch t {
	case TypeTSP:
		return "TSP"
	case TypeATSP:
		return "ATSP"
	default:
		return "UNKNOWN"
	}
}

// ParseProblemType matches s case-insensitively; unknown values yield TypeUnknown.
func ParseProblemType(s string) ProblemType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TSP":
		return TypeTSP
	case "ATSP":
		return TypeATSP
	default:
		return TypeUnknown
	}
}

// WeightType is the declared EDGE_WEIGHT_TYPE of an instance.
type WeightType uint8

const (
	// WeightUnknown is the zero value: EDGE_WEIGHT_TYPE missing or not supported.
	WeightUnknown WeightType = iota
	// WeightExplicit means weights are listed in EDGE_WEIGHT_SECTION.
	WeightExplicit
	// WeightEuclidean2D means weights are rounded distances between NODE_COORD_SECTION points.
	WeightEuclidean2D
)

// String returns the TSPLIB token.
func (w WeightType) String() string {
	switch w {
	case WeightExplicit:
		return "EXPLICIT"
	case WeightEuclidean2D:
		return "EUC_2D"
	default:
		return "UNKNOWN"
	}
}

// ParseWeightType matches s case-insensitively; unknown values yield WeightUnknown.
func ParseWeightType(s string) WeightType {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "EXPLICIT":
		return WeightExplicit
	case "EUC_2D":
		return WeightEuclidean2D
	default:
		return WeightUnknown
	}
}
