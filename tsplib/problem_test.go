// SPDX-License-Identifier: MIT
package tsplib_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/tsplib/matrix"
	"github.com/katalvlaran/tsplib/tsplib"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation rejects matrices that cannot back a Problem.
func TestNew_Validation(t *testing.T) {
	_, err := tsplib.New("nil", "", nil, tsplib.WeightExplicit, tsplib.TypeTSP)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = tsplib.New("rect", "", rect, tsplib.WeightExplicit, tsplib.TypeTSP)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	neg, err := matrix.FromRows([][]float64{{0, -1}, {1, 0}})
	require.NoError(t, err)
	_, err = tsplib.New("neg", "", neg, tsplib.WeightExplicit, tsplib.TypeATSP)
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)

	inf, err := matrix.NewSquare(2)
	require.NoError(t, err)
	inf.RawRowView(0)[1] = math.Inf(1)
	_, err = tsplib.New("inf", "", inf, tsplib.WeightExplicit, tsplib.TypeATSP)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestProblem_Accessors covers the read-only surface.
func TestProblem_Accessors(t *testing.T) {
	p := newProblem(t, "acc", tsplib.TypeATSP, [][]float64{{0, 2}, {3, 0}})

	require.Equal(t, "acc", p.Name())
	require.Equal(t, "generated", p.Comment())
	require.Equal(t, 2, p.Size())
	require.False(t, p.Symmetric())
	require.True(t, p.Euclidean())
	require.Equal(t, 0, p.First())
	require.Equal(t, 0, p.Last())
	require.Equal(t, 2.0, p.Weight(0, 1))
	require.Equal(t, 3.0, p.Weight(1, 0))
	require.Equal(t, 2, p.WeightMatrix().Rows())
	require.Equal(t, "acc (ATSP, EXPLICIT, n=2)", p.String())

	require.Panics(t, func() { p.Weight(2, 0) })
}

// TestProblem_Best is unset until SetBest and safe for concurrent use.
func TestProblem_Best(t *testing.T) {
	p := newProblem(t, "best", tsplib.TypeTSP, [][]float64{{0, 1}, {1, 0}})

	_, ok := p.Best()
	require.False(t, ok)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.SetBest(2)
			_, _ = p.Best()
		}()
	}
	wg.Wait()

	best, ok := p.Best()
	require.True(t, ok)
	require.Equal(t, 2.0, best)
}

// TestTypes_ParseAndString round-trips the enum tokens.
func TestTypes_ParseAndString(t *testing.T) {
	require.Equal(t, tsplib.TypeTSP, tsplib.ParseProblemType("tsp"))
	require.Equal(t, tsplib.TypeATSP, tsplib.ParseProblemType(" ATSP "))
	require.Equal(t, tsplib.TypeUnknown, tsplib.ParseProblemType("HCP"))
	require.Equal(t, "ATSP", tsplib.TypeATSP.String())
	require.Equal(t, "UNKNOWN", tsplib.TypeUnknown.String())

	require.Equal(t, tsplib.WeightExplicit, tsplib.ParseWeightType("Explicit"))
	require.Equal(t, tsplib.WeightEuclidean2D, tsplib.ParseWeightType("euc_2d"))
	require.Equal(t, tsplib.WeightUnknown, tsplib.ParseWeightType("GEO"))
	require.Equal(t, "EUC_2D", tsplib.WeightEuclidean2D.String())
	require.Equal(t, "UNKNOWN", tsplib.WeightUnknown.String())
}

// TestEuclideanWeights covers the coordinate helpers directly.
func TestEuclideanWeights(t *testing.T) {
	require.Equal(t, 5.0, tsplib.Point{X: 0, Y: 0}.Distance(tsplib.Point{X: 3, Y: 4}))
	require.Equal(t, 2.0, tsplib.Point{}.Distance(tsplib.Point{X: 1, Y: 2}))

	m, err := tsplib.EuclideanWeights([]tsplib.Point{{0, 0}, {3, 4}, {6, 8}})
	require.NoError(t, err)
	require.True(t, matrix.IsSymmetric(m, 0))
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 10.0, v)

	_, err = tsplib.EuclideanWeights(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
