// File: lattice.go
// Role: Lattice spacing recovery and path-length headroom.
// Determinism:
//   - LatticeStep depends only on the coordinate multiset, not its order.

package core

import "math"

// LatticeStep recovers the spacing of a node set as the GCD of all
// coordinates; 1 when every coordinate is zero or nodes is empty.
func LatticeStep(nodes []Node) int {
	step := 0
	for _, n := range nodes {
		step = gcd(step, abs(n.X))
		step = gcd(step, abs(n.Y))
	}
	if step == 0 {
		return 1
	}

	return step
}

// WeightBudget returns the largest edge weight w such that any simple path
// over nodeCount nodes, at most nodeCount-1 edges of weight ≤ w, sums to
// strictly less than math.MaxInt64. Distances at MaxInt64 mean unreachable.
func WeightBudget(nodeCount int) int64 {
	hops := int64(nodeCount - 1)
	if hops < 1 {
		hops = 1
	}

	return (math.MaxInt64 - 1) / hops
}

// MaxWeight returns the largest edge weight in g, 0 when g has no edges.
func (g *Graph) MaxWeight() int64 {
	var w int64
	for _, arcs := range g.adj {
		for _, a := range arcs {
			if a.Weight > w {
				w = a.Weight
			}
		}
	}

	return w
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
