package core_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// ExampleGraph builds a two-node graph with a symmetric pair of edges.
func ExampleGraph() {
	g := core.NewGraph()
	a, b := core.Pt(0, 0), core.Pt(8, 0)
	g.AddNode(a)
	g.AddNode(b)
	_ = g.AddEdge(a, b, 3)
	_ = g.AddEdge(b, a, 3)

	for _, e := range g.AllEdges() {
		fmt.Println(e)
	}
	// Output:
	// (0,0)->(8,0)[3]
	// (8,0)->(0,0)[3]
}
