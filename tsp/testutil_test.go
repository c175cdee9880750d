// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"sort"

	"github.com/katalvlaran/tsplib/tsp"
)

// startV is the canonical start vertex used across tests.
const startV = 0

// denseProblem is a minimal tsp.Problem over a literal matrix.
type denseProblem struct {
	w   [][]float64
	sym bool
}

var _ tsp.Problem = denseProblem{}

func (p denseProblem) Size() int                   { return len(p.w) }
func (p denseProblem) Weight(from, to int) float64 { return p.w[from][to] }
func (p denseProblem) Symmetric() bool             { return p.sym }
func (p denseProblem) First() int                  { return startV }
func (p denseProblem) Last() int                   { return startV }

// Neighbours recomputes the ten closest nodes on every call (tests only).
func (p denseProblem) Neighbours(v int) tsp.Neighbourhood {
	nodes := make([]int, 0, len(p.w))
	for u := range p.w {
		if u != v {
			nodes = append(nodes, u)
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool { return p.w[v][nodes[i]] < p.w[v][nodes[j]] })
	if len(nodes) > 10 {
		nodes = nodes[:10]
	}
	var max float64
	for _, u := range nodes {
		max = math.Max(max, p.w[v][u])
	}

	return tsp.Neighbourhood{Nodes: nodes, Max: max}
}

// euclid builds a symmetric problem from 2-D points (unrounded distances).
func euclid(pts [][2]float64) denseProblem {
	n := len(pts)
	w := make([][]float64, n)
	for i := range pts {
		w[i] = make([]float64, n)
		for j := range pts {
			w[i][j] = math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
		}
	}

	return denseProblem{w: w, sym: true}
}

// circle places n points on a circle of radius r; the optimal tour follows the perimeter.
func circle(n int, r float64) denseProblem {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{r * math.Cos(a), r * math.Sin(a)}
	}

	return euclid(pts)
}
