// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_repair.go — undirected connectivity repair.
//
// Contract:
//   • Components come from bfs.Components (edges treated as undirected).
//   • Component i is joined to component i+1 by the closest node pair
//     (n1 ∈ comp_i, n2 ∈ comp_{i+1}) with edges n1→n2 and n2→n1 sharing one
//     fresh weight from the repair range.
//   • After one pass the graph is a single undirected component; the loop
//     re-checks and stops when at most one component remains.
//   • Repair does not by itself guarantee a directed start→end path.
//
// Complexity: O(V + E) per component pass plus O(|comp_i| · log |comp_{i+1}|)
// nearest-neighbor queries per joined pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
)

// repairConnectivity joins undirected components and returns the number of
// symmetric pairs added together with the component count seen first.
func (b *Builder) repairConnectivity(g *core.Graph) (pairs, initial int, err error) {
	for pass := 0; ; pass++ {
		comps := bfs.Components(g)
		if pass == 0 {
			initial = len(comps)
		}
		if len(comps) <= 1 {
			return pairs, initial, nil
		}
		for i := 0; i+1 < len(comps); i++ {
			n1, n2 := closestPair(g, comps[i], comps[i+1])
			w := randWeight(b.cfg.rng, b.cfg.repairMin, b.cfg.repairMax)
			if err = g.AddEdge(n1, n2, w); err != nil {
				return pairs, initial, fmt.Errorf("%s: repair %s->%s: %w", methodGenerate, n1, n2, err)
			}
			if err = g.AddEdge(n2, n1, w); err != nil {
				return pairs, initial, fmt.Errorf("%s: repair %s->%s: %w", methodGenerate, n2, n1, err)
			}
			pairs++
			b.cfg.logger.Debug("repair: joined %s <-> %s (w=%d)", n1, n2, w)
		}
	}
}

// closestPair finds (n1 ∈ a, n2 ∈ c) minimizing Euclidean distance.
// c is indexed in an R-tree and every member of a queries its nearest
// neighbor; ties keep the first pair found in a's order.
func closestPair(g *core.Graph, a, c []core.Node) (core.Node, core.Node) {
	ids := make([]int, 0, len(c))
	for _, n := range c {
		id, _ := g.ID(n)
		ids = append(ids, id)
	}
	idx := newSpatialIndex(g, ids)

	var (
		best1, best2 core.Node
		bestD        float64
		found        bool
	)
	for _, n1 := range a {
		id, d, ok := idx.nearest(n1)
		if !ok {
			continue
		}
		if !found || d < bestD {
			best1, best2, bestD, found = n1, g.NodeAt(id), d, true
		}
	}

	return best1, best2
}
