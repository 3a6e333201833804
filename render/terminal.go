package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/stats"
)

// Renderer produces one frame per snapshot. Implementations must not
// mutate g or st.
type Renderer interface {
	Frame(g *core.Graph, start, end core.Node, st dijkstra.State) string
}

// Cell glyphs.
const (
	glyphStart    = 'S'
	glyphEnd      = 'E'
	glyphPath     = '*'
	glyphCurrent  = '@'
	glyphVisited  = 'o'
	glyphFrontier = '+'
	glyphNode     = '.'
	glyphEmpty    = ' '
)

// Terminal renders a character grid for ANSI terminals.
type Terminal struct {
	r    *lipgloss.Renderer
	step int

	endpoint lipgloss.Style
	path     lipgloss.Style
	current  lipgloss.Style
	visited  lipgloss.Style
	frontier lipgloss.Style
	status   lipgloss.Style
}

// TerminalOption customizes a Terminal.
type TerminalOption func(*Terminal)

// WithRenderer sets the lipgloss renderer, which decides the colour profile.
// Panics on nil.
func WithRenderer(r *lipgloss.Renderer) TerminalOption {
	if r == nil {
		panic("render: WithRenderer(nil)")
	}
	return func(t *Terminal) {
		t.r = r
	}
}

// WithCellStep fixes the coordinate distance between adjacent cells.
// By default it is recovered from the node set. Panics if step < 1.
func WithCellStep(step int) TerminalOption {
	if step < 1 {
		panic("render: WithCellStep(step<1)")
	}
	return func(t *Terminal) {
		t.step = step
	}
}

// NewTerminal returns a Terminal bound to lipgloss's default renderer unless
// WithRenderer says otherwise.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{r: lipgloss.DefaultRenderer()}
	for _, opt := range opts {
		opt(t)
	}

	t.endpoint = t.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
	t.path = t.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	t.current = t.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF00FF"))
	t.visited = t.r.NewStyle().Foreground(lipgloss.Color("#5F87FF"))
	t.frontier = t.r.NewStyle().Foreground(lipgloss.Color("#5FFF87"))
	t.status = t.r.NewStyle().Faint(true)

	return t
}

// Frame renders g with st overlaid. Rows grow downward with y.
func (t *Terminal) Frame(g *core.Graph, start, end core.Node, st dijkstra.State) string {
	if g == nil || g.NodeCount() == 0 {
		return t.status.Render(statusLine(g, end, st))
	}

	step := t.step
	if step == 0 {
		step = core.LatticeStep(g.Nodes())
	}
	first := g.NodeAt(0)
	minX, minY, maxX, maxY := first.X, first.Y, first.X, first.Y
	for _, n := range g.Nodes() {
		minX, minY = min(minX, n.X), min(minY, n.Y)
		if n.X > maxX {
			maxX = n.X
		}
		if n.Y > maxY {
			maxY = n.Y
		}
	}

	onPath := make(map[core.Node]bool, len(st.CurrentPath))
	for _, n := range st.CurrentPath {
		onPath[n] = true
	}
	summary, err := stats.WeightStats(g)
	haveStats := err == nil

	var b strings.Builder
	for y := minY; y <= maxY; y += step {
		for x := minX; x <= maxX; x += step {
			if x > minX {
				b.WriteByte(' ')
			}
			n := core.Pt(x, y)
			if !g.HasNode(n) {
				b.WriteRune(glyphEmpty)
				continue
			}
			b.WriteString(t.cell(g, n, start, end, st, onPath, summary, haveStats))
		}
		b.WriteByte('\n')
	}
	b.WriteString(t.status.Render(statusLine(g, end, st)))

	return b.String()
}

// cell picks the glyph and style of one node; earlier rules win.
func (t *Terminal) cell(g *core.Graph, n, start, end core.Node, st dijkstra.State,
	onPath map[core.Node]bool, summary stats.Summary, haveStats bool) string {
	switch {
	case n == start:
		return t.endpoint.Render(string(glyphStart))
	case n == end:
		return t.endpoint.Render(string(glyphEnd))
	case onPath[n]:
		return t.path.Render(string(glyphPath))
	case st.CurrentNode != nil && *st.CurrentNode == n:
		return t.current.Render(string(glyphCurrent))
	case st.Visited[n]:
		return t.visited.Render(string(glyphVisited))
	case reached(st, n):
		return t.frontier.Render(string(glyphFrontier))
	}
	if !haveStats {
		return string(glyphNode)
	}

	return t.r.NewStyle().Foreground(grey(nodeBrightness(g, n, summary))).Render(string(glyphNode))
}

func reached(st dijkstra.State, n core.Node) bool {
	d, ok := st.Distances[n]

	return ok && d != dijkstra.Infinity
}

// nodeBrightness is the brightness of the mean outgoing weight of n, or
// full brightness for nodes without outgoing edges.
func nodeBrightness(g *core.Graph, n core.Node, s stats.Summary) float64 {
	es := g.Edges(n)
	if len(es) == 0 {
		return stats.MaxBrightness
	}
	var sum int64
	for _, e := range es {
		sum += e.Weight
	}

	return stats.Brightness(sum/int64(len(es)), s)
}

// grey maps a brightness in [0,1] to a grey hex colour.
func grey(b float64) lipgloss.Color {
	v := int(b*255 + 0.5)

	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", v, v, v))
}

// statusLine summarizes st in one line.
func statusLine(g *core.Graph, end core.Node, st dijkstra.State) string {
	parts := []string{fmt.Sprintf("step %d", st.Step), st.Status.String()}
	if st.CurrentNode != nil {
		parts = append(parts, fmt.Sprintf("at %s d=%d", *st.CurrentNode, st.Distances[*st.CurrentNode]))
	}
	if st.Stale {
		parts = append(parts, "stale")
	}
	if st.ProcessingEdge != nil {
		parts = append(parts, "edge "+st.ProcessingEdge.String())
	}
	total := 0
	if g != nil {
		total = g.NodeCount()
	}
	parts = append(parts, fmt.Sprintf("visited %d/%d", len(st.Visited), total))
	if len(st.CurrentPath) > 0 {
		parts = append(parts, fmt.Sprintf("path %d nodes cost %d", len(st.CurrentPath), st.Distances[end]))
	}

	return strings.Join(parts, " | ")
}
