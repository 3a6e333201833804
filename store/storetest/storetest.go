// Package storetest provides a conformance suite shared by every
// store.Store backend.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/store"
)

// Sample returns a small record with a repair-style symmetric pair and a
// one-way edge, endpoints at opposite corners.
func Sample() store.Record {
	g := core.NewGraph()
	for _, n := range []core.Node{core.Pt(0, 0), core.Pt(0, 8), core.Pt(8, 0), core.Pt(8, 8)} {
		g.AddNode(n)
	}
	_ = g.AddEdge(core.Pt(0, 0), core.Pt(8, 0), 3)
	_ = g.AddEdge(core.Pt(8, 0), core.Pt(0, 0), 3)
	_ = g.AddEdge(core.Pt(8, 0), core.Pt(8, 8), 7)
	_ = g.AddEdge(core.Pt(0, 8), core.Pt(0, 0), 1)

	return store.Record{Graph: g, Start: core.Pt(0, 0), End: core.Pt(8, 8)}
}

// RequireSameRecord asserts that got reproduces want exactly.
func RequireSameRecord(t *testing.T, want, got store.Record) {
	t.Helper()
	require.NotNil(t, got.Graph)
	assert.Equal(t, want.Start, got.Start)
	assert.Equal(t, want.End, got.End)
	assert.Equal(t, want.Graph.Nodes(), got.Graph.Nodes())
	assert.Equal(t, want.Graph.AllEdges(), got.Graph.AllEdges())
}

// Run exercises the Store contract against s, which must start empty.
func Run(t *testing.T, s store.Store) {
	t.Helper()
	ctx := context.Background()
	rec := Sample()

	keys, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = s.Load(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, s.Save(ctx, "b", rec))
	require.NoError(t, s.Save(ctx, "a", rec))

	got, err := s.Load(ctx, "b")
	require.NoError(t, err)
	RequireSameRecord(t, rec, got)

	// Overwrite replaces.
	alt := Sample()
	alt.Start, alt.End = core.Pt(8, 8), core.Pt(0, 8)
	require.NoError(t, s.Save(ctx, "b", alt))
	got, err = s.Load(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, core.Pt(8, 8), got.Start)

	keys, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, s.Delete(ctx, "a"))
	require.NoError(t, s.Delete(ctx, "a"), "deleting a missing key is not an error")
	_, err = s.Load(ctx, "a")
	assert.ErrorIs(t, err, store.ErrNotFound)

	keys, err = s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, keys)

	assert.ErrorIs(t, s.Save(ctx, "", rec), store.ErrInvalidKey)
	assert.ErrorIs(t, s.Save(ctx, "../x", rec), store.ErrInvalidKey)
	assert.Error(t, s.Save(ctx, "nil", store.Record{}))
}
