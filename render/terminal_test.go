package render_test

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/render"
)

// plain renders without escape codes: a non-terminal writer selects the
// ASCII colour profile.
func plain() *render.Terminal {
	return render.NewTerminal(render.WithRenderer(lipgloss.NewRenderer(io.Discard)))
}

func diamond(t *testing.T) (*core.Graph, core.Node, core.Node) {
	t.Helper()
	a, b, c, d := core.Pt(0, 0), core.Pt(8, 0), core.Pt(0, 8), core.Pt(8, 8)
	g := core.NewGraph()
	for _, n := range []core.Node{a, b, c, d} {
		g.AddNode(n)
	}
	require.NoError(t, g.AddEdge(a, b, 1))
	require.NoError(t, g.AddEdge(a, c, 4))
	require.NoError(t, g.AddEdge(b, d, 2))
	require.NoError(t, g.AddEdge(c, d, 1))

	return g, a, d
}

func TestTerminal_InitialFrame(t *testing.T) {
	g, start, end := diamond(t)
	s, err := dijkstra.NewStepper(g, start, end)
	require.NoError(t, err)

	got := plain().Frame(g, start, end, s.State())
	want := "S .\n" +
		". E\n" +
		"step 0 | initialized | visited 0/4"
	assert.Equal(t, want, got)
}

func TestTerminal_Progress(t *testing.T) {
	g, start, end := diamond(t)
	s, err := dijkstra.NewStepper(g, start, end)
	require.NoError(t, err)
	term := plain()

	st, _ := s.Step()
	assert.Equal(t, "S +\n+ E\n"+
		"step 1 | running | at (0,0) d=0 | edge (0,0)->(0,8)[4] | visited 1/4",
		term.Frame(g, start, end, st))

	st, _ = s.Step()
	assert.Equal(t, "S @\n+ E\n"+
		"step 2 | running | at (8,0) d=1 | edge (8,0)->(8,8)[2] | visited 2/4",
		term.Frame(g, start, end, st))

	st = s.Run()
	assert.Equal(t, "S *\n+ E\n"+
		"step 3 | found | at (8,8) d=3 | edge (8,0)->(8,8)[2] | visited 3/4 | path 3 nodes cost 3",
		term.Frame(g, start, end, st))
}

func TestTerminal_Holes(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(core.Pt(0, 0))
	g.AddNode(core.Pt(10, 5))
	st := dijkstra.State{}

	got := plain().Frame(g, core.Pt(0, 0), core.Pt(10, 5), st)
	lines := strings.Split(got, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "S    ", lines[0])
	assert.Equal(t, "    E", lines[1])
}

func TestTerminal_Options(t *testing.T) {
	assert.Panics(t, func() { render.WithRenderer(nil) })
	assert.Panics(t, func() { render.WithCellStep(0) })

	g, start, end := diamond(t)
	term := render.NewTerminal(
		render.WithRenderer(lipgloss.NewRenderer(io.Discard)),
		render.WithCellStep(4),
	)
	lines := strings.Split(term.Frame(g, start, end, dijkstra.State{}), "\n")
	assert.Equal(t, "S   .", lines[0])
	assert.Equal(t, "     ", lines[1])
}

func TestTerminal_Empty(t *testing.T) {
	var r render.Renderer = plain()
	assert.Equal(t, "step 0 | initialized | visited 0/0", r.Frame(nil, core.Node{}, core.Node{}, dijkstra.State{}))
}
