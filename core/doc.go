// Package core defines the weighted grid graph shared by the generator,
// the shortest-path stepper and every collaborator that consumes them.
//
// A Graph G = (V,E) here is deliberately narrow:
//
//   - Nodes are integer lattice points (x, y); equality is structural.
//   - Every node receives a stable integer ID at insertion time (0,1,2,…).
//     Algorithms index their side tables (distances, predecessors, visited
//     flags) by that ID instead of hashing coordinates on every access.
//   - Edges are directed, owned by the source node's adjacency slice and
//     carry an integer weight ≥ 1. Symmetric connections are two edges.
//   - Adjacency order is insertion order, so replays are deterministic.
//
// Invariants enforced by AddEdge and re-checked by Validate:
//
//	– both endpoints of an edge are members of the node set (no dangling targets);
//	– weight ≥ 1.
//
// Concurrency:
//
//	Graph is not internally synchronized. The builder owns it exclusively
//	while generating; afterwards it is handed over as a read-only value
//	(usually via Clone) and may be read from any number of goroutines.
//
// Core Methods:
//
//	AddNode(n Node) int                        // O(1) amortized, idempotent
//	AddEdge(from, to Node, w int64) error      // O(1) amortized
//	HasNode(n Node) bool / ID(n Node) (int,bool)
//	Nodes() []Node                             // ID order
//	Edges(n Node) []Edge / Arcs(id int) []Arc  // insertion order
//	AllEdges() []Edge / EdgeCount() int
//	ClearEdges() / Clone() *Graph / Validate() error
package core
