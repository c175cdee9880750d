// SPDX-License-Identifier: MIT

package tsplib

import (
	"math"

	"github.com/katalvlaran/tsplib/matrix"
)

// Point is a 2-D integer coordinate from NODE_COORD_SECTION.
type Point struct {
	X, Y int
}

// Distance returns the Euclidean distance to q rounded to the nearest integer.
// Complexity: O(1).
func (p Point) Distance(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)

	return math.Round(math.Sqrt(dx*dx + dy*dy))
}

// EuclideanWeights derives the full |points|×|points| matrix of rounded distances.
// The result is symmetric with a zero diagonal.
//
// Errors: matrix.ErrInvalidDimensions for an empty slice.
// Complexity: O(n²).
func EuclideanWeights(points []Point) (*matrix.Dense, error) {
	n := len(points)
	data := make([]float64, n*n)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d := points[i].Distance(points[j])
			data[i*n+j] = d
			data[j*n+i] = d
		}
	}

	return matrix.NewDenseOf(n, n, data)
}
