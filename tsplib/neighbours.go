// SPDX-License-Identifier: MIT

package tsplib

import (
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/tsplib/tsp"
)

// NeighbourCount is the length cap of every candidate list.
const NeighbourCount = 10

// neighbourSlot memoizes the candidate list of one node.
type neighbourSlot struct {
	once sync.Once
	nb   tsp.Neighbourhood
}

// Neighbours returns up to NeighbourCount other nodes ordered by ascending
// Weight(v, ·), ties broken by increasing index, plus the largest admitted weight.
//
// The list is computed on first access and cached for the lifetime of p;
// concurrent callers for the same v block until the first computation ends.
// The returned Nodes slice is shared and must not be modified.
//
// Complexity: O(n log n) on first access, O(1) afterwards.
func (p *Problem) Neighbours(v int) tsp.Neighbourhood {
	slot := &p.neighbours[v]
	slot.once.Do(func() {
		slot.nb = p.computeNeighbours(v)
	})

	return slot.nb
}

// computeNeighbours buckets every other node by its exact weight from v and
// drains buckets in ascending weight order until NeighbourCount nodes are taken.
// Nodes are appended to buckets in index order, which yields the tie-break.
func (p *Problem) computeNeighbours(v int) tsp.Neighbourhood {
	var (
		row     = p.weights.RawRowView(v)
		buckets = make(map[float64][]int)
		u       int
	)
	for u = 0; u < p.size; u++ {
		if u == v {
			continue
		}
		buckets[row[u]] = append(buckets[row[u]], u)
	}

	keys := maps.Keys(buckets)
	slices.Sort(keys)

	var (
		limit = NeighbourCount
		nb    tsp.Neighbourhood
	)
	if p.size-1 < limit {
		limit = max(p.size-1, 0)
	}
	nb.Nodes = make([]int, 0, limit)

drain:
	for _, w := range keys {
		for _, u = range buckets[w] {
			if len(nb.Nodes) == limit {
				break drain
			}
			if w > nb.Max {
				nb.Max = w
			}
			nb.Nodes = append(nb.Nodes, u)
		}
	}

	return nb
}
