// File: builder_test.go
// Package builder_test verifies generation invariants: single undirected
// component, directed start→end path, valid weights and determinism.
package builder_test

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/builder"
	"github.com/katalvlaran/gridpath/core"
)

// zeroSource makes every draw return 0: counts collapse to their lower
// bound, sampling keeps candidates in ID order and weights take their minimum.
type zeroSource struct{}

func (zeroSource) Int63() int64 { return 0 }
func (zeroSource) Seed(int64)   {}

// recordingLogger captures messages per level.
type recordingLogger struct {
	mu   sync.Mutex
	warn []string
	info []string
}

func (l *recordingLogger) Debug(string, ...any) {}
func (l *recordingLogger) Info(f string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.info = append(l.info, fmt.Sprintf(f, v...))
}
func (l *recordingLogger) Warn(f string, v ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warn = append(l.warn, fmt.Sprintf(f, v...))
}
func (l *recordingLogger) Error(string, ...any) {}

func TestNew_InvalidGrid(t *testing.T) {
	for _, tc := range []struct{ w, h, step int }{
		{64, 64, 0},
		{64, 64, -8},
		{-1, 64, 8},
		{64, -1, 8},
	} {
		_, err := builder.New(tc.w, tc.h, tc.step)
		assert.ErrorIs(t, err, builder.ErrInvalidConfig, "%+v", tc)
	}
}

func TestParams_Validate(t *testing.T) {
	base := builder.DefaultParams()
	require.NoError(t, base.Validate())

	cases := map[string]func(p *builder.Params){
		"negative min connections": func(p *builder.Params) { p.MinConnections = -1 },
		"min > max connections":    func(p *builder.Params) { p.MinConnections, p.MaxConnections = 5, 4 },
		"zero weight":              func(p *builder.Params) { p.MinWeight = 0 },
		"min > max weight":         func(p *builder.Params) { p.MinWeight, p.MaxWeight = 9, 3 },
		"factor == 1":              func(p *builder.Params) { p.DistanceFactor = 1.0 },
		"factor NaN":               func(p *builder.Params) { p.DistanceFactor = math.NaN() },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			p := base
			mutate(&p)
			assert.ErrorIs(t, p.Validate(), builder.ErrInvalidConfig)

			b, err := builder.New(16, 16, 8, builder.WithSeed(1))
			require.NoError(t, err)
			g, err := b.Generate(p)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, builder.ErrInvalidConfig)
			assert.Equal(t, 0, b.Attempts(), "configuration errors are raised before any attempt")
		})
	}
}

// TestGenerate_WeightBudget rejects weight ranges whose longest simple path
// over the node set would reach the unreachable sentinel.
func TestGenerate_WeightBudget(t *testing.T) {
	b, err := builder.New(16, 0, 8, builder.WithSeed(1)) // 3 nodes, paths of ≤ 2 edges
	require.NoError(t, err)
	limit := core.WeightBudget(3)

	p := builder.DefaultParams()
	p.MaxWeight = math.MaxInt64
	require.NoError(t, p.Validate(), "the budget depends on the node set, not on Params alone")
	g, err := b.Generate(p)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)
	assert.Equal(t, 0, b.Attempts())

	p.MaxWeight = limit + 1
	_, err = b.Generate(p)
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)

	p.MinWeight, p.MaxWeight = limit, limit
	g, err = b.Generate(p)
	require.NoError(t, err)
	for _, e := range g.AllEdges() {
		assert.LessOrEqual(t, e.Weight, limit)
	}

	// Repair weights count against the same budget.
	rb, err := builder.New(16, 0, 8, builder.WithSeed(1), builder.WithRepairWeights(1, math.MaxInt64))
	require.NoError(t, err)
	_, err = rb.Generate(builder.DefaultParams())
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)
}

// TestGenerateFunc_ValidatesFirst checks the one-shot form rejects bad
// parameters before synthesizing a lattice, even one New would refuse.
func TestGenerateFunc_ValidatesFirst(t *testing.T) {
	p := builder.DefaultParams()
	p.MinWeight = 0

	g, _, _, err := builder.Generate(-1, -1, 0, p)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "MinWeight", "parameter errors come before grid errors")

	g, start, end, err := builder.Generate(16, 16, 8, builder.DefaultParams(), builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, core.Pt(0, 0), start)
	assert.Equal(t, core.Pt(16, 16), end)
	assert.True(t, bfs.Reachable(g, start, end))
}

func TestNew_NodeSynthesis(t *testing.T) {
	b, err := builder.New(64, 64, 8)
	require.NoError(t, err)
	nodes := b.Nodes()
	assert.Len(t, nodes, 81)
	assert.Equal(t, core.Pt(0, 0), nodes[0])
	assert.Equal(t, core.Pt(0, 8), nodes[1], "IDs are assigned x-major")

	start, end := b.Endpoints()
	assert.Equal(t, core.Pt(0, 0), start)
	assert.Equal(t, core.Pt(64, 64), end)
	assert.Nil(t, b.Graph(), "no graph before Generate")
	assert.False(t, b.PathExists())

	// Dimensions that are not multiples of step never overshoot the bounds.
	b, err = builder.New(10, 20, 8)
	require.NoError(t, err)
	for _, n := range b.Nodes() {
		assert.LessOrEqual(t, n.X, 10)
		assert.LessOrEqual(t, n.Y, 20)
	}
	assert.Len(t, b.Nodes(), 2*3)
	_, end = b.Endpoints()
	assert.Equal(t, core.Pt(8, 16), end)
}

// TestGenerate_Invariants checks the generation guarantees over many seeds,
// verifying connectivity and reachability with independent BFS runs.
func TestGenerate_Invariants(t *testing.T) {
	p := builder.DefaultParams()
	for seed := int64(1); seed <= 25; seed++ {
		b, err := builder.New(64, 64, 8, builder.WithSeed(seed))
		require.NoError(t, err)
		g, err := b.Generate(p)
		require.NoError(t, err, "seed %d", seed)
		start, end := b.Endpoints()

		// Single undirected component: closure from any node is the full set.
		res, err := bfs.BFS(g, g.NodeAt(g.NodeCount()-1), bfs.WithUndirected())
		require.NoError(t, err)
		assert.Len(t, res.Order, g.NodeCount(), "seed %d: graph must be connected", seed)
		assert.Len(t, bfs.Components(g), 1)

		// Directed start→end path.
		res, err = bfs.BFS(g, start)
		require.NoError(t, err)
		assert.True(t, res.Reached(end), "seed %d: end unreachable", seed)

		// Weights ≥ 1, no dangling targets.
		require.NoError(t, g.Validate())
		for _, e := range g.AllEdges() {
			assert.GreaterOrEqual(t, e.Weight, int64(1))
			assert.True(t, g.HasNode(e.To))
			assert.NotEqual(t, e.From, e.To, "no self loops")
		}
		assert.Equal(t, 81, g.NodeCount(), "node set is fixed")
		assert.True(t, b.PathExists())
	}
}

func TestGenerate_RandomEdgesRespectWindow(t *testing.T) {
	// Large repair weights make repair edges distinguishable from random ones.
	p := builder.Params{MinConnections: 1, MaxConnections: 3, MinWeight: 1, MaxWeight: 5, DistanceFactor: 1.5}
	b, err := builder.New(40, 40, 4, builder.WithSeed(3), builder.WithRepairWeights(100, 100))
	require.NoError(t, err)
	g, err := b.Generate(p)
	require.NoError(t, err)

	for _, e := range g.AllEdges() {
		if e.Weight == 100 {
			continue
		}
		assert.LessOrEqual(t, e.Weight, int64(5))
		d := math.Hypot(float64(e.To.X-e.From.X), float64(e.To.Y-e.From.Y))
		assert.GreaterOrEqual(t, d, 4.0, e.String())
		assert.LessOrEqual(t, d, 6.0, e.String())
	}
	for _, n := range g.Nodes() {
		assert.LessOrEqual(t, countRandom(g.Edges(n)), 3, "at most MaxConnections random edges from %s", n)
	}
}

func countRandom(es []core.Edge) int {
	c := 0
	for _, e := range es {
		if e.Weight != 100 {
			c++
		}
	}
	return c
}

func TestGenerate_Deterministic(t *testing.T) {
	gen := func() []core.Edge {
		g, _, _, err := builder.Generate(32, 32, 8, builder.DefaultParams(), builder.WithSeed(99))
		require.NoError(t, err)
		return g.AllEdges()
	}
	assert.Equal(t, gen(), gen())
}

// TestGenerate_RepairOnly disables random edges so every edge comes from
// repair: consecutive singleton components are chained by symmetric pairs.
func TestGenerate_RepairOnly(t *testing.T) {
	p := builder.Params{MinConnections: 0, MaxConnections: 0, MinWeight: 1, MaxWeight: 1, DistanceFactor: 2}
	b, err := builder.New(16, 16, 8, builder.WithRand(rand.New(zeroSource{})))
	require.NoError(t, err)
	g, err := b.Generate(p)
	require.NoError(t, err)

	assert.Equal(t, 2*(g.NodeCount()-1), g.EdgeCount())
	for _, e := range g.AllEdges() {
		assert.Equal(t, int64(1), e.Weight, "zero source picks the lower repair bound")
		back := false
		for _, r := range g.Edges(e.To) {
			if r.To == e.From && r.Weight == e.Weight {
				back = true
			}
		}
		assert.True(t, back, "repair edge %s must have a mirror", e)
	}
	assert.Equal(t, 1, b.Attempts())
}

// TestGenerate_Exhausted uses a 3-node line where the zero source makes the
// middle node always point back at the start, so (16,0) is never reachable.
func TestGenerate_Exhausted(t *testing.T) {
	logger := &recordingLogger{}
	p := builder.Params{MinConnections: 1, MaxConnections: 1, MinWeight: 2, MaxWeight: 9, DistanceFactor: 1.5}
	b, err := builder.New(16, 0, 8,
		builder.WithRand(rand.New(zeroSource{})),
		builder.WithMaxAttempts(4),
		builder.WithLogger(logger),
	)
	require.NoError(t, err)

	g, err := b.Generate(p)
	assert.Nil(t, g, "a graph failing validation is never returned")
	assert.ErrorIs(t, err, builder.ErrGenerationExhausted)
	assert.Equal(t, 4, b.Attempts())
	assert.Len(t, logger.warn, 4)
	assert.Nil(t, b.Graph())

	// Reversing the endpoints makes the same topology valid.
	start, end := core.Pt(16, 0), core.Pt(0, 0)
	b.SetEndpoints(&start, &end)
	g, err = b.Generate(p)
	require.NoError(t, err)
	assert.Equal(t, 3, g.EdgeCount())
	for _, e := range g.AllEdges() {
		assert.Equal(t, int64(2), e.Weight)
	}
	assert.Len(t, logger.info, 1)
}

func TestSetEndpoints_NonMemberIgnored(t *testing.T) {
	b, err := builder.New(64, 64, 8, builder.WithSeed(5))
	require.NoError(t, err)
	start, end := b.Endpoints()

	bogus := core.Pt(3, 5)
	b.SetEndpoints(&bogus, &bogus)
	gotStart, gotEnd := b.Endpoints()
	assert.Equal(t, start, gotStart, "non-member start must leave start unchanged")
	assert.Equal(t, end, gotEnd, "non-member end must leave end unchanged")

	b.SetEndpoints(nil, nil)
	gotStart, gotEnd = b.Endpoints()
	assert.Equal(t, start, gotStart)
	assert.Equal(t, end, gotEnd)

	newStart := core.Pt(24, 8)
	b.SetEndpoints(&newStart, nil)
	gotStart, gotEnd = b.Endpoints()
	assert.Equal(t, newStart, gotStart)
	assert.Equal(t, end, gotEnd)
}

func TestFromGraph(t *testing.T) {
	g := core.NewGraph()
	for _, n := range []core.Node{core.Pt(0, 0), core.Pt(6, 0), core.Pt(12, 6)} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(core.Pt(0, 0), core.Pt(6, 0), 2))
	require.NoError(t, g.AddEdge(core.Pt(6, 0), core.Pt(12, 6), 2))

	_, err := builder.FromGraph(g, core.Pt(0, 0), core.Pt(1, 1))
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)
	_, err = builder.FromGraph(nil, core.Pt(0, 0), core.Pt(0, 0))
	assert.ErrorIs(t, err, builder.ErrInvalidConfig)

	b, err := builder.FromGraph(g, core.Pt(0, 0), core.Pt(12, 6), builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 6, b.Step())
	assert.True(t, b.PathExists())

	back := core.Pt(0, 0)
	from := core.Pt(12, 6)
	b.SetEndpoints(&from, &back)
	assert.False(t, b.PathExists(), "edges are one-way")

	// The loaded graph is copied; the caller's instance is untouched.
	require.NoError(t, g.AddEdge(core.Pt(12, 6), core.Pt(0, 0), 1))
	assert.False(t, b.PathExists())
	assert.Equal(t, 2, b.Graph().EdgeCount())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxAttempts(0) })
	assert.Panics(t, func() { builder.WithRepairWeights(0, 5) })
	assert.Panics(t, func() { builder.WithRepairWeights(6, 5) })
	assert.Panics(t, func() { builder.WithLogger(nil) })
}
