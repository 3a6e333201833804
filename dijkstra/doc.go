// Package dijkstra runs Dijkstra's shortest-path algorithm as a resumable,
// inspectable state machine over a finished *core.Graph.
//
// Overview:
//
//   - A Stepper performs exactly one transition per Step call: one pop from the
//     frontier followed by the relaxation of the popped node's outgoing edges.
//   - After every transition the full internal state is exposed as a State
//     snapshot (current node, visited set, distances, predecessors, the edge
//     examined last and, once found, the path).
//   - Lifecycle: Initialized → Running → {Found, Exhausted}. Found and
//     Exhausted are terminal; Reset returns to Initialized.
//
// Frontier:
//
//   - A container/heap min-heap ordered by (distance, x, y), so ties break
//     lexicographically by node coordinates and replays are deterministic.
//   - Lazy decrease-key: an improved distance pushes a duplicate entry; popping
//     an already visited node is a "stale" transition that still counts as a
//     step but changes nothing except State.Stale and State.Step.
//
// Render cadence:
//
//   - State.ProcessingEdge holds only the last edge examined while expanding a
//     node. Earlier edges of the same expansion are not reported.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for a full run, plus O(V) per snapshot.
//   - Space: O(V + E); the heap may hold up to E entries.
//
// Errors (sentinel):
//
//   - ErrNilGraph       if the graph pointer is nil.
//   - ErrNodeNotFound   if start or end is not a member of the graph.
//   - ErrInvalidGraph   if the graph fails core.Graph.Validate.
//   - ErrBrokenPath     if PathCost is given consecutive nodes with no edge.
//
// Once constructed, a Stepper never fails: "no path" is the Exhausted state.
package dijkstra
