// File: methods_clone.go
// Role: Cloning, clearing and validating graph instances.
// Determinism:
//   - Clone keeps node IDs and adjacency order, so a clone replays identically.

package core

import "fmt"

// Clone returns a deep copy: same node IDs, same adjacency order.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		nodes: make([]Node, len(g.nodes)),
		index: make(map[Node]int, len(g.index)),
		adj:   make([][]Arc, len(g.adj)),
		edges: g.edges,
	}
	copy(c.nodes, g.nodes)
	for n, id := range g.index {
		c.index[n] = id
	}
	for u, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		c.adj[u] = make([]Arc, len(arcs))
		copy(c.adj[u], arcs)
	}

	return c
}

// ClearEdges drops every edge and keeps the node set (and IDs) intact.
func (g *Graph) ClearEdges() {
	for u := range g.adj {
		g.adj[u] = nil
	}
	g.edges = 0
}

// Validate re-checks the structural invariants: every arc points at a
// member node and carries weight ≥ MinWeight.
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if a.To < 0 || a.To >= len(g.nodes) {
				return fmt.Errorf("Validate: edge from %s to id %d: %w", g.nodes[u], a.To, ErrDanglingEdge)
			}
			if a.Weight < MinWeight {
				return fmt.Errorf("Validate: edge %s->%s w=%d: %w",
					g.nodes[u], g.nodes[a.To], a.Weight, ErrNonPositiveWeight)
			}
		}
	}

	return nil
}
