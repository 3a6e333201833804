// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// impl_nodes.go — lattice node synthesis.
//
// Contract:
//   • Nodes at every (x, y) with x ∈ {0, step, 2·step, …} ≤ width and
//     y ∈ {0, step, …} ≤ height. Points beyond the bounds are never created,
//     even when width or height is not a multiple of step.
//   • IDs are assigned x-major (x asc, then y asc).
//
// Complexity: O((width/step+1)·(height/step+1)).

package builder

import "github.com/katalvlaran/gridpath/core"

// synthesizeNodes returns an edgeless graph holding the lattice and the
// far corner (largest x, largest y) used as the default end node.
func synthesizeNodes(width, height, step int) (*core.Graph, core.Node) {
	g := core.NewGraph()
	var last core.Node
	for x := 0; x <= width; x += step {
		for y := 0; y <= height; y += step {
			last = core.Pt(x, y)
			g.AddNode(last)
		}
	}

	return g, last
}
