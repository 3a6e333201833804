package bfs

import (
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	reverse [][]int // incoming neighbor IDs; nil unless Undirected
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartNodeNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit hook error.
func BFS(g *core.Graph, start core.Node, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	sid, ok := g.ID(start)
	if !ok {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]core.Node, 0, n),
			Depth:  make(map[core.Node]int, n),
			Parent: make(map[core.Node]core.Node, n),
		},
	}
	if o.Undirected {
		w.reverse = reverseAdjacency(g)
	}

	w.enqueue(sid, 0, -1)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, records its parent and queues it.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	node := w.graph.NodeAt(id)
	w.res.Depth[node] = d
	if parent >= 0 {
		w.res.Parent[node] = w.graph.NodeAt(parent)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		node := w.graph.NodeAt(item.id)
		w.res.Order = append(w.res.Order, node)
		if err := w.opts.OnVisit(node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", node, err)
		}

		next := item.depth + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		for _, a := range w.graph.Arcs(item.id) {
			if !w.visited[a.To] {
				w.enqueue(a.To, next, item.id)
			}
		}
		if w.reverse != nil {
			for _, from := range w.reverse[item.id] {
				if !w.visited[from] {
					w.enqueue(from, next, item.id)
				}
			}
		}
	}

	return nil
}

// reverseAdjacency lists, for every node ID, the IDs of its in-neighbors.
// Complexity: O(V + E).
func reverseAdjacency(g *core.Graph) [][]int {
	rev := make([][]int, g.NodeCount())
	for u := 0; u < g.NodeCount(); u++ {
		for _, a := range g.Arcs(u) {
			rev[a.To] = append(rev[a.To], u)
		}
	}

	return rev
}

// Reachable reports whether a directed path from→to exists in g.
// Non-member endpoints are never reachable.
// Complexity: O(V + E) worst case; stops as soon as to is dequeued.
func Reachable(g *core.Graph, from, to core.Node) bool {
	if g == nil {
		return false
	}
	src, ok := g.ID(from)
	if !ok {
		return false
	}
	dst, ok := g.ID(to)
	if !ok {
		return false
	}

	seen := make([]bool, g.NodeCount())
	queue := []int{src}
	seen[src] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		if u == dst {
			return true
		}
		for _, a := range g.Arcs(u) {
			if !seen[a.To] {
				seen[a.To] = true
				queue = append(queue, a.To)
			}
		}
	}

	return false
}

// Components partitions the node set of g into undirected connected
// components (edges treated as bidirectional). Components are ordered by
// their smallest node ID; members appear in BFS discovery order.
//
// Time:   O(V + E).
// Memory: O(V + E) for the reverse adjacency and visited flags.
func Components(g *core.Graph) [][]core.Node {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	rev := reverseAdjacency(g)
	seen := make([]bool, n)
	var comps [][]core.Node

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []core.Node

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, g.NodeAt(u))
			for _, a := range g.Arcs(u) {
				if !seen[a.To] {
					seen[a.To] = true
					queue = append(queue, a.To)
				}
			}
			for _, v := range rev[u] {
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
