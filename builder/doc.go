// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// Package builder synthesizes weighted grid graphs with guaranteed
// start→end reachability.
//
// Pipeline (one call to Generate):
//
//  1. Node synthesis (once, in New): every (x, y) with x, y multiples of
//     step inside [0, width] × [0, height]. IDs follow x-major order.
//  2. Random edge synthesis: for every node, candidate neighbors are the
//     nodes at Euclidean distance d with step ≤ d ≤ step×DistanceFactor.
//     A uniformly random count in [MinConnections, min(MaxConnections, |cand|)]
//     of them is sampled without replacement; each gets a directed edge with
//     a uniform integer weight in [MinWeight, MaxWeight].
//  3. Connectivity repair: undirected components are computed with BFS and
//     consecutive components are joined by a symmetric edge pair between
//     their closest nodes (fresh weight in the repair range, default [1,10]).
//  4. Endpoint validation: a directed BFS from start must reach end.
//  5. Regeneration: on failure, steps 2–4 are retried on the same node set
//     until the attempt budget (default 10) is spent, then
//     ErrGenerationExhausted is returned. A disconnected graph is never returned.
//
// Spatial queries go through an R-tree (github.com/dhconnelly/rtreego) and
// distances through github.com/paulmach/orb/planar.
//
// Determinism:
//
//	All randomness flows through one *rand.Rand (WithSeed / WithRand).
//	Candidates are ordered by node ID before sampling, so a fixed seed yields
//	a byte-identical graph. No randomness is used outside Generate.
//
// Errors:
//
//	ErrInvalidConfig        – malformed grid or Params; raised before any work.
//	ErrGenerationExhausted  – repair/validation failed on every attempt.
//
// Example:
//
//	b, err := builder.New(64, 64, 8, builder.WithSeed(7))
//	if err != nil { … }
//	g, err := b.Generate(builder.DefaultParams())
//	start, end := b.Endpoints()
package builder
