// File: methods_edges.go
// Role: Edge insertion and edge queries.
// Determinism:
//   - Edges(n) and Arcs(id) preserve insertion order.
//   - AllEdges() walks sources in ID order, then each adjacency in insertion order.

package core

import "fmt"

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Reject weight < MinWeight (ErrNonPositiveWeight).
//  2. Resolve both endpoints; a missing one yields ErrNodeNotFound.
//  3. Append the arc to the source adjacency.
//
// Parallel edges and opposite-direction pairs are allowed; connectivity
// repair relies on the latter.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to Node, weight int64) error {
	if weight < MinWeight {
		return fmt.Errorf("AddEdge(%s->%s, w=%d): %w", from, to, weight, ErrNonPositiveWeight)
	}
	u, ok := g.index[from]
	if !ok {
		return fmt.Errorf("AddEdge: source %s: %w", from, ErrNodeNotFound)
	}
	v, ok := g.index[to]
	if !ok {
		return fmt.Errorf("AddEdge: target %s: %w", to, ErrNodeNotFound)
	}
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})
	g.edges++

	return nil
}

// Arcs returns the outgoing arcs of the node with the given ID.
// The returned slice is the graph's own storage and must not be modified.
func (g *Graph) Arcs(id int) []Arc {
	return g.adj[id]
}

// Edges returns the outgoing edges of n in insertion order, or nil when n is
// not a member of the node set.
func (g *Graph) Edges(n Node) []Edge {
	u, ok := g.index[n]
	if !ok {
		return nil
	}
	out := make([]Edge, 0, len(g.adj[u]))
	for _, a := range g.adj[u] {
		out = append(out, Edge{From: n, To: g.nodes[a.To], Weight: a.Weight})
	}

	return out
}

// AllEdges returns every edge of the graph.
// Complexity: O(V + E).
func (g *Graph) AllEdges() []Edge {
	out := make([]Edge, 0, g.edges)
	for u, arcs := range g.adj {
		for _, a := range arcs {
			out = append(out, Edge{From: g.nodes[u], To: g.nodes[a.To], Weight: a.Weight})
		}
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Degree returns the out-degree of n (0 for non-members).
func (g *Graph) Degree(n Node) int {
	u, ok := g.index[n]
	if !ok {
		return 0
	}

	return len(g.adj[u])
}
