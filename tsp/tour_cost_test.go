package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tsplib/tsp"
	"github.com/stretchr/testify/require"
)

// square4 is the unit square 0-1-2-3 with diagonals of length 2.
var square4 = denseProblem{
	w: [][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	},
	sym: true,
}

// TestTourCost covers the happy path and the sentinel errors.
func TestTourCost(t *testing.T) {
	cost, err := tsp.TourCost(square4, []int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 4.0, cost)

	cost, err = tsp.TourCost(square4, []int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	require.Equal(t, 6.0, cost)

	_, err = tsp.TourCost(square4, []int{0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourCost(square4, []int{0, 4, 0})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	inf := denseProblem{w: [][]float64{{0, math.Inf(1)}, {1, 0}}}
	_, err = tsp.TourCost(inf, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrIncompleteGraph)

	neg := denseProblem{w: [][]float64{{0, -1}, {1, 0}}}
	_, err = tsp.TourCost(neg, []int{0, 1, 0})
	require.ErrorIs(t, err, tsp.ErrNegativeWeight)
}

// TestValidateTour is table-driven over the Hamiltonian-cycle invariants.
func TestValidateTour(t *testing.T) {
	tests := []struct {
		name    string
		tour    []int
		n       int
		start   int
		wantErr error
	}{
		{"valid", []int{0, 2, 1, 3, 0}, 4, 0, nil},
		{"short", []int{0, 1, 0}, 4, 0, tsp.ErrDimensionMismatch},
		{"open", []int{0, 1, 2, 3, 1}, 4, 0, tsp.ErrDimensionMismatch},
		{"duplicate", []int{0, 1, 1, 3, 0}, 4, 0, tsp.ErrDimensionMismatch},
		{"out of range", []int{0, 1, 5, 3, 0}, 4, 0, tsp.ErrDimensionMismatch},
		{"bad start", []int{0, 1, 2, 3, 0}, 4, 4, tsp.ErrStartOutOfRange},
		{"zero n", []int{0}, 0, 0, tsp.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := tsp.ValidateTour(tc.tour, tc.n, tc.start)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestRotateTourToStart covers closed tours, raw paths and a missing start.
func TestRotateTourToStart(t *testing.T) {
	out, err := tsp.RotateTourToStart([]int{2, 3, 0, 1, 2}, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 0}, out)

	out, err = tsp.RotateTourToStart([]int{3, 1, 0, 2}, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2, 3, 1}, out)

	_, err = tsp.RotateTourToStart([]int{1, 2, 1}, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.RotateTourToStart(nil, 0)
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}

// TestNeighbourhoodHelpers checks Len and Contains.
func TestNeighbourhoodHelpers(t *testing.T) {
	nb := tsp.Neighbourhood{Nodes: []int{3, 1}, Max: 2}
	require.Equal(t, 2, nb.Len())
	require.True(t, nb.Contains(1))
	require.False(t, nb.Contains(0))
}
