// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_edges.go — random directed edge synthesis.
//
// Contract:
//   • Nodes are processed in ID order; each draws from the RNG in a fixed
//     sequence (count, then one swap index and one weight per sampled edge).
//   • Candidates: step ≤ d ≤ step×DistanceFactor (so never the node itself).
//   • Count k is uniform in [lo, hi] with hi = min(MaxConnections, |cand|)
//     and lo = min(MinConnections, hi).
//   • Sampling without replacement via a partial Fisher–Yates shuffle.
//   • Weight uniform in [MinWeight, MaxWeight].
//
// Complexity: O(V · (log V + c)) with c the candidate count per node.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/gridpath/core"
)

// synthesizeEdges appends random edges to g (which must be edgeless for a
// faithful attempt) and returns the number of edges added.
func synthesizeEdges(g *core.Graph, idx *spatialIndex, step int, p Params, rng *rand.Rand) (int, error) {
	minDist := float64(step)
	maxDist := float64(step) * p.DistanceFactor
	added := 0

	for u := 0; u < g.NodeCount(); u++ {
		from := g.NodeAt(u)
		cand := idx.within(from, minDist, maxDist)
		if len(cand) == 0 {
			continue // isolated for now; repair will attach it
		}

		hi := p.MaxConnections
		if hi > len(cand) {
			hi = len(cand)
		}
		lo := p.MinConnections
		if lo > hi {
			lo = hi
		}
		k := lo + rng.Intn(hi-lo+1)

		for i := 0; i < k; i++ {
			j := i + rng.Intn(len(cand)-i)
			cand[i], cand[j] = cand[j], cand[i]

			w := randWeight(rng, p.MinWeight, p.MaxWeight)
			if err := g.AddEdge(from, g.NodeAt(cand[i]), w); err != nil {
				return added, err
			}
			added++
		}
	}

	return added, nil
}

// randWeight draws a uniform integer in [min, max].
func randWeight(rng *rand.Rand, min, max int64) int64 {
	return min + rng.Int63n(max-min+1)
}
