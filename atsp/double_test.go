// SPDX-License-Identifier: MIT
package atsp_test

import (
	"testing"

	"github.com/katalvlaran/tsplib/atsp"
	"github.com/katalvlaran/tsplib/matrix"
	"github.com/stretchr/testify/require"
)

// asym3 is a 3-node ATSP: 0→1→2→0 costs 6, 0→2→1→0 costs 60.
func asym3(t *testing.T) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows([][]float64{
		{0, 1, 20},
		{20, 0, 2},
		{3, 20, 0},
	})
	require.NoError(t, err)
	return m
}

// TestPenaltyAndOffset checks M = 1 + Σ off-diagonal and Offset = n·M.
func TestPenaltyAndOffset(t *testing.T) {
	m, err := atsp.Penalty(asym3(t))
	require.NoError(t, err)
	require.Equal(t, 67.0, m)

	off, err := atsp.Offset(asym3(t))
	require.NoError(t, err)
	require.Equal(t, 201.0, off)
}

// TestDouble_Shape verifies size, symmetry, zero diagonal and the tie edges.
func TestDouble_Shape(t *testing.T) {
	d, err := atsp.Double(asym3(t))
	require.NoError(t, err)
	require.Equal(t, 6, d.Rows())
	require.NoError(t, matrix.ValidateSymmetric(d, 0))
	require.NoError(t, matrix.ValidateZeroDiagonal(d, 0))

	for i := 0; i < 3; i++ {
		v, err := d.At(i, 3+i)
		require.NoError(t, err)
		require.Equal(t, 0.0, v)
	}

	// Arc 0→1 lives on ghost(0)–1.
	v, err := d.At(3, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0+67, v)
}

// TestDouble_TourCostMatches maps the ATSP tour 0→1→2→0 onto the doubled instance.
func TestDouble_TourCostMatches(t *testing.T) {
	d, err := atsp.Double(asym3(t))
	require.NoError(t, err)

	// 0 g0 1 g1 2 g2 0 encodes 0→1→2→0.
	tour := []int{0, 3, 1, 4, 2, 5, 0}
	var sum float64
	for k := 0; k+1 < len(tour); k++ {
		w, err := d.At(tour[k], tour[k+1])
		require.NoError(t, err)
		sum += w
	}
	require.Equal(t, 6.0+201, sum)

	back, err := atsp.Unfold(tour, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 0}, back)
}

// TestUnfold_Reversed walks a tour given in the opposite direction.
func TestUnfold_Reversed(t *testing.T) {
	back, err := atsp.Unfold([]int{0, 5, 2, 4, 1, 3, 0}, 3)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 0}, back)
}

// TestUnfold_Rejects covers non-alternating and malformed tours.
func TestUnfold_Rejects(t *testing.T) {
	_, err := atsp.Unfold([]int{0, 1, 3, 4, 2, 5, 0}, 3)
	require.ErrorIs(t, err, atsp.ErrBadTour)

	_, err = atsp.Unfold([]int{0, 3, 0}, 3)
	require.ErrorIs(t, err, atsp.ErrBadTour)
}

// TestDouble_RejectsInvalid forwards matrix validation sentinels.
func TestDouble_RejectsInvalid(t *testing.T) {
	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = atsp.Double(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg, err := matrix.FromRows([][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	_, err = atsp.Double(neg)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}
