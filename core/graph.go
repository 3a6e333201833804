// File: graph.go
// Role: Graph storage, node lifecycle and node queries.
// Determinism:
//   - Node IDs are assigned in insertion order and never reused.
//   - Nodes() returns nodes in ID order.

package core

// Graph is a directed, weighted graph over lattice nodes.
//
// nodes[id] is the node with that ID, index is the reverse lookup and
// adj[id] holds the outgoing arcs of nodes[id] in insertion order.
type Graph struct {
	nodes []Node
	index map[Node]int
	adj   [][]Arc
	edges int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{index: make(map[Node]int)}
}

// AddNode inserts n if absent and returns its ID. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) int {
	if id, ok := g.index[n]; ok {
		return id
	}
	id := len(g.nodes)
	g.nodes = append(g.nodes, n)
	g.adj = append(g.adj, nil)
	g.index[n] = id

	return id
}

// HasNode reports whether n is a member of the node set.
func (g *Graph) HasNode(n Node) bool {
	_, ok := g.index[n]
	return ok
}

// ID returns the stable integer identifier of n.
func (g *Graph) ID(n Node) (int, bool) {
	id, ok := g.index[n]
	return id, ok
}

// NodeAt returns the node with the given ID. It panics on an out-of-range ID,
// exactly like indexing a slice.
func (g *Graph) NodeAt(id int) Node {
	return g.nodes[id]
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// Nodes returns a copy of the node set in ID order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}
