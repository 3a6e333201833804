// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted hop distances, parent links and visit order, plus undirected
// connected-component discovery.
//
// What
//
//   - BFS explores nodes in non-decreasing hop count from a start node and
//     returns a Result (Order, Depth, Parent, PathTo).
//   - By default edges are followed in their own direction (From→To).
//     WithUndirected() treats every edge as traversable both ways; the
//     generator uses that mode only for connectivity repair.
//   - Reachable answers "is there a directed path u→v" without building a Result.
//   - Components partitions the node set into undirected connected components.
//
// Determinism
//
//	Neighbors are expanded in adjacency insertion order (outgoing arcs first,
//	then incoming arcs in undirected mode), and component seeds are taken in
//	node-ID order, so results are fully reproducible for a given graph.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier and visited flags, plus O(E) for the
//     reverse adjacency in undirected mode.
package bfs
