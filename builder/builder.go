// SPDX-License-Identifier: MIT
// Package: gridpath/builder
//
// builder.go — Builder lifecycle: New/FromGraph, Generate, endpoints.
//
// Ownership:
//   • The Builder exclusively owns its working graph while generating.
//   • Generate and Graph hand out clones; callers may keep them forever
//     and the stepper may read them without synchronization.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/core"
)

// Method tags used in error context.
const (
	methodNew       = "New"
	methodFromGraph = "FromGraph"
	methodGenerate  = "Generate"
)

// Builder produces graphs over a fixed node set and tracks the start/end pair.
// A Builder is not safe for concurrent use.
type Builder struct {
	cfg     builderConfig
	step    int
	lattice *core.Graph // edgeless node set; IDs are shared with every generated graph
	index   *spatialIndex
	graph   *core.Graph // last graph that passed validation, nil before the first success

	start, end core.Node
	attempts   int
}

// New synthesizes the lattice for (width, height, step) and returns a
// Builder whose endpoints default to (0,0) and the far corner.
// Returns ErrInvalidConfig for step ≤ 0 or negative dimensions.
func New(width, height, step int, opts ...Option) (*Builder, error) {
	if err := validateGrid(width, height, step); err != nil {
		return nil, err
	}
	lattice, corner := synthesizeNodes(width, height, step)

	return newBuilder(lattice, step, core.Pt(0, 0), corner, opts), nil
}

// FromGraph wraps an existing graph (for example one loaded from a store)
// so SetEndpoints, PathExists and Generate work on its node set.
// The lattice step is recovered as the GCD of all coordinates.
// Returns ErrInvalidConfig when g is nil, empty, or start/end are not members.
func FromGraph(g *core.Graph, start, end core.Node, opts ...Option) (*Builder, error) {
	if g == nil || g.NodeCount() == 0 {
		return nil, fmt.Errorf("%s: empty graph: %w", methodFromGraph, ErrInvalidConfig)
	}
	for _, n := range []core.Node{start, end} {
		if !g.HasNode(n) {
			return nil, fmt.Errorf("%s: endpoint %s not in node set: %w", methodFromGraph, n, ErrInvalidConfig)
		}
	}

	lattice := g.Clone()
	lattice.ClearEdges()
	b := newBuilder(lattice, core.LatticeStep(g.Nodes()), start, end, opts)
	b.graph = g.Clone()

	return b, nil
}

func newBuilder(lattice *core.Graph, step int, start, end core.Node, opts []Option) *Builder {
	ids := make([]int, lattice.NodeCount())
	for i := range ids {
		ids[i] = i
	}

	return &Builder{
		cfg:     newBuilderConfig(opts...),
		step:    step,
		lattice: lattice,
		index:   newSpatialIndex(lattice, ids),
		start:   start,
		end:     end,
	}
}

// Generate runs edge synthesis, connectivity repair and endpoint validation,
// retrying on the same node set until a directed start→end path exists or
// the attempt budget is spent.
//
// Returns:
//   - a clone of the accepted graph (single undirected component, end
//     reachable from start along directed edges);
//   - ErrInvalidConfig if p is malformed or its weights (or the repair
//     weights) could overflow a path distance over this node set; nothing
//     is generated;
//   - ErrGenerationExhausted if every attempt failed validation. The
//     previously accepted graph, if any, stays current.
//
// Complexity: O(A · (V log V + E)) for A attempts.
func (b *Builder) Generate(p Params) (*core.Graph, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := b.checkWeightBudget(p); err != nil {
		return nil, err
	}

	work := b.lattice.Clone()
	logger := b.cfg.logger
	b.attempts = 0

	for attempt := 1; attempt <= b.cfg.maxAttempts; attempt++ {
		b.attempts = attempt
		work.ClearEdges()

		added, err := synthesizeEdges(work, b.index, b.step, p, b.cfg.rng)
		if err != nil {
			return nil, fmt.Errorf("%s: attempt %d: %w", methodGenerate, attempt, err)
		}
		pairs, comps, err := b.repairConnectivity(work)
		if err != nil {
			return nil, err
		}
		logger.Debug("attempt %d: %d random edges, %d components, %d repair pairs",
			attempt, added, comps, pairs)

		if bfs.Reachable(work, b.start, b.end) {
			b.graph = work
			logger.Info("graph ready after %d attempt(s): %d nodes, %d edges",
				attempt, work.NodeCount(), work.EdgeCount())

			return work.Clone(), nil
		}
		logger.Warn("attempt %d/%d: %s not reachable from %s", attempt, b.cfg.maxAttempts, b.end, b.start)
	}

	return nil, fmt.Errorf("%s: %d attempts, %s not reachable from %s: %w",
		methodGenerate, b.cfg.maxAttempts, b.end, b.start, ErrGenerationExhausted)
}

// checkWeightBudget rejects weight ranges whose longest simple path over the
// node set would reach the unreachable-distance sentinel.
func (b *Builder) checkWeightBudget(p Params) error {
	limit := core.WeightBudget(b.lattice.NodeCount())
	heaviest := max(p.MaxWeight, b.cfg.repairMax)
	if heaviest > limit {
		return fmt.Errorf("%s: max weight %d exceeds %d for %d nodes: %w",
			methodGenerate, heaviest, limit, b.lattice.NodeCount(), ErrInvalidConfig)
	}

	return nil
}

// SetEndpoints replaces start and/or end. A nil candidate, or one that is
// not a member of the node set, is ignored; this is not an error, so callers
// may try candidates optimistically.
func (b *Builder) SetEndpoints(start, end *core.Node) {
	if start != nil && b.lattice.HasNode(*start) {
		b.start = *start
	}
	if end != nil && b.lattice.HasNode(*end) {
		b.end = *end
	}
}

// Endpoints returns the current start and end nodes.
func (b *Builder) Endpoints() (core.Node, core.Node) {
	return b.start, b.end
}

// Graph returns a clone of the last accepted graph, or nil before the first
// successful Generate.
func (b *Builder) Graph() *core.Graph {
	if b.graph == nil {
		return nil
	}

	return b.graph.Clone()
}

// Nodes returns the node set in ID order.
func (b *Builder) Nodes() []core.Node {
	return b.lattice.Nodes()
}

// Step returns the lattice spacing.
func (b *Builder) Step() int {
	return b.step
}

// Attempts reports how many attempts the last Generate call made.
func (b *Builder) Attempts() int {
	return b.attempts
}

// PathExists re-runs directed reachability from start to end on the current
// graph. Use it after SetEndpoints; false when no graph has been accepted.
func (b *Builder) PathExists() bool {
	if b.graph == nil {
		return false
	}

	return bfs.Reachable(b.graph, b.start, b.end)
}

// Generate is the one-shot form: build the lattice, generate with p and
// return the graph together with its default endpoints.
func Generate(width, height, step int, p Params, opts ...Option) (*core.Graph, core.Node, core.Node, error) {
	if err := p.Validate(); err != nil {
		return nil, core.Node{}, core.Node{}, err
	}
	b, err := New(width, height, step, opts...)
	if err != nil {
		return nil, core.Node{}, core.Node{}, err
	}
	g, err := b.Generate(p)
	if err != nil {
		return nil, core.Node{}, core.Node{}, err
	}
	start, end := b.Endpoints()

	return g, start, end, nil
}
