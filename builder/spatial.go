// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// spatial.go — R-tree index over lattice nodes.
//
// The index answers two questions during generation:
//   • which nodes lie in the annulus step ≤ d ≤ step×factor around a node
//     (edge synthesis), and
//   • which member of a component is nearest to a given point (repair).
// The R-tree narrows by bounding box; orb/planar decides exact distances.

package builder

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/gridpath/core"
)

const (
	rtreeDim      = 2
	rtreeMinChild = 4
	rtreeMaxChild = 16
	// pointTolerance pads each node into a tiny box; rtreego rejects zero-size rects.
	pointTolerance = 0.01
)

// nodeEntry wraps a node for R-tree storage.
type nodeEntry struct {
	id   int
	node core.Node
	box  rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *nodeEntry) Bounds() rtreego.Rect {
	return e.box
}

// spatialIndex is an R-tree over a subset of graph nodes.
type spatialIndex struct {
	tree *rtreego.Rtree
	size int
}

// newSpatialIndex indexes the given node IDs of g in the given order.
func newSpatialIndex(g *core.Graph, ids []int) *spatialIndex {
	tree := rtreego.NewTree(rtreeDim, rtreeMinChild, rtreeMaxChild)
	for _, id := range ids {
		n := g.NodeAt(id)
		tree.Insert(&nodeEntry{
			id:   id,
			node: n,
			box:  rtreego.Point{float64(n.X), float64(n.Y)}.ToRect(pointTolerance),
		})
	}

	return &spatialIndex{tree: tree, size: len(ids)}
}

// toOrb converts a lattice node to a planar point.
func toOrb(n core.Node) orb.Point {
	return orb.Point{float64(n.X), float64(n.Y)}
}

// within returns the IDs of indexed nodes whose Euclidean distance from n
// lies in [minDist, maxDist], sorted by ID for deterministic sampling.
// A node is never its own candidate because minDist > 0.
func (si *spatialIndex) within(n core.Node, minDist, maxDist float64) []int {
	center := toOrb(n)
	box := center.Bound().Pad(maxDist)
	rect, err := rtreego.NewRect(
		rtreego.Point{box.Min[0], box.Min[1]},
		[]float64{box.Max[0] - box.Min[0], box.Max[1] - box.Min[1]},
	)
	if err != nil {
		return nil
	}

	hits := si.tree.SearchIntersect(rect)
	out := make([]int, 0, len(hits))
	for _, h := range hits {
		e := h.(*nodeEntry)
		d := planar.Distance(center, toOrb(e.node))
		if d >= minDist && d <= maxDist {
			out = append(out, e.id)
		}
	}
	sort.Ints(out)

	return out
}

// nearest returns the indexed node closest to n and its squared distance.
// ok is false for an empty index.
func (si *spatialIndex) nearest(n core.Node) (id int, dist2 float64, ok bool) {
	if si.size == 0 {
		return 0, 0, false
	}
	p := toOrb(n)
	hit := si.tree.NearestNeighbor(rtreego.Point{p[0], p[1]})
	if hit == nil {
		return 0, 0, false
	}
	e := hit.(*nodeEntry)

	return e.id, planar.DistanceSquared(p, toOrb(e.node)), true
}
