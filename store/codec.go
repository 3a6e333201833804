package store

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// wireRecord is the JSON form:
//
//	{"nodes":[[x,y],...],"edges":[[x1,y1,x2,y2,w],...],"start":[x,y],"end":[x,y]}
//
// Node order is the graph's ID order; edge order is adjacency order, so a
// round trip reproduces the graph exactly.
type wireRecord struct {
	Nodes [][2]int   `json:"nodes"`
	Edges [][5]int64 `json:"edges"`
	Start [2]int     `json:"start"`
	End   [2]int     `json:"end"`
}

// Marshal encodes rec. The graph must be non-nil.
func Marshal(rec Record) ([]byte, error) {
	if rec.Graph == nil {
		return nil, fmt.Errorf("Marshal: nil graph: %w", ErrMalformed)
	}
	nodes := rec.Graph.Nodes()
	w := wireRecord{
		Nodes: make([][2]int, len(nodes)),
		Edges: make([][5]int64, 0, rec.Graph.EdgeCount()),
		Start: [2]int{rec.Start.X, rec.Start.Y},
		End:   [2]int{rec.End.X, rec.End.Y},
	}
	for i, n := range nodes {
		w.Nodes[i] = [2]int{n.X, n.Y}
	}
	for _, e := range rec.Graph.AllEdges() {
		w.Edges = append(w.Edges, [5]int64{
			int64(e.From.X), int64(e.From.Y), int64(e.To.X), int64(e.To.Y), e.Weight,
		})
	}

	return json.Marshal(w)
}

// Unmarshal decodes data produced by Marshal. Any syntax error, dangling
// edge, non-positive weight or non-member endpoint yields ErrMalformed.
func Unmarshal(data []byte) (Record, error) {
	var w wireRecord
	if err := json.Unmarshal(data, &w); err != nil {
		return Record{}, fmt.Errorf("Unmarshal: %v: %w", err, ErrMalformed)
	}
	if len(w.Nodes) == 0 {
		return Record{}, fmt.Errorf("Unmarshal: no nodes: %w", ErrMalformed)
	}

	g := core.NewGraph()
	for _, p := range w.Nodes {
		g.AddNode(core.Pt(p[0], p[1]))
	}
	for i, e := range w.Edges {
		from := core.Pt(int(e[0]), int(e[1]))
		to := core.Pt(int(e[2]), int(e[3]))
		if err := g.AddEdge(from, to, e[4]); err != nil {
			return Record{}, fmt.Errorf("Unmarshal: edge %d: %v: %w", i, err, ErrMalformed)
		}
	}

	rec := Record{
		Graph: g,
		Start: core.Pt(w.Start[0], w.Start[1]),
		End:   core.Pt(w.End[0], w.End[1]),
	}
	if !g.HasNode(rec.Start) || !g.HasNode(rec.End) {
		return Record{}, fmt.Errorf("Unmarshal: endpoints %s, %s not in node set: %w",
			rec.Start, rec.End, ErrMalformed)
	}

	return rec, nil
}
