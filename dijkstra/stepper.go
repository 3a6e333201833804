package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// noPrev marks a node without predecessor in the internal prev slice.
const noPrev = -1

// Stepper executes Dijkstra's algorithm one transition at a time over a fixed
// graph, start and end. The graph is only read, never mutated.
// Step calls must be serialized; returned States are safe to share.
type Stepper struct {
	g          *core.Graph
	start, end int
	opts       Options

	// Mutable traversal state, indexed by node ID.
	dist    []int64
	prev    []int
	visited []bool
	pq      nodePQ

	status  Status
	steps   int
	current int        // ID popped most recently, noPrev before the first pop
	edge    *core.Edge // last examined edge
	path    []core.Node
	last    State
}

// NewStepper validates its inputs and returns a Stepper in StatusInitialized.
//
// Preconditions (checked in order):
//  1. g is non-nil (ErrNilGraph).
//  2. g passes core.Graph.Validate and no edge exceeds
//     core.WeightBudget(g.NodeCount()), so every finite distance stays
//     below Infinity (ErrInvalidGraph).
//  3. start and end are members of g (ErrNodeNotFound).
func NewStepper(g *core.Graph, start, end core.Node, opts ...Option) (*Stepper, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidGraph, err)
	}
	if w, limit := g.MaxWeight(), core.WeightBudget(g.NodeCount()); w > limit {
		return nil, fmt.Errorf("%w: edge weight %d exceeds %d for %d nodes", ErrInvalidGraph, w, limit, g.NodeCount())
	}
	sid, ok := g.ID(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %s", ErrNodeNotFound, start)
	}
	eid, ok := g.ID(end)
	if !ok {
		return nil, fmt.Errorf("%w: end %s", ErrNodeNotFound, end)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Stepper{g: g, start: sid, end: eid, opts: cfg}
	s.Reset()

	return s, nil
}

// Reset returns the Stepper to StatusInitialized with a fresh frontier
// seeded by (0, start). It is valid in any state.
func (s *Stepper) Reset() {
	n := s.g.NodeCount()
	s.dist = make([]int64, n)
	s.prev = make([]int, n)
	s.visited = make([]bool, n)
	for i := 0; i < n; i++ {
		s.dist[i] = Infinity
		s.prev[i] = noPrev
	}
	s.dist[s.start] = 0

	s.pq = make(nodePQ, 0, n)
	heap.Init(&s.pq)
	heap.Push(&s.pq, &nodeItem{id: s.start, node: s.g.NodeAt(s.start), dist: 0})

	s.status = StatusInitialized
	s.steps = 0
	s.current = noPrev
	s.edge = nil
	s.path = nil
	s.last = s.snapshot(false)
}

// Step performs one transition and returns its snapshot with true.
//
// It returns the latest snapshot with false, mutating nothing else, when the
// Stepper is already terminal. When the frontier is empty it transitions to
// StatusExhausted and returns false; that call is not counted as a step.
//
// Transition:
//  1. Pop the minimum (distance, node) entry.
//  2. Already visited: stale pop. Step and Stale change, nothing else.
//  3. Otherwise mark visited and make it the current node.
//  4. The end node: rebuild the path from predecessors and become Found.
//  5. Otherwise relax every edge to an unvisited neighbor, recording it as
//     the processing edge; strictly shorter distances update dist/prev and
//     push a new frontier entry.
func (s *Stepper) Step() (State, bool) {
	if s.status.Terminal() {
		return s.last, false
	}
	if s.pq.Len() == 0 {
		s.status = StatusExhausted
		s.last.Status = StatusExhausted
		s.opts.Logger.Info("exhausted after %d steps: %s unreachable from %s",
			s.steps, s.g.NodeAt(s.end), s.g.NodeAt(s.start))

		return s.last, false
	}

	// 1) Pop.
	item := heap.Pop(&s.pq).(*nodeItem)
	s.steps++
	s.status = StatusRunning

	// 2) Stale entry left behind by an earlier improvement.
	if s.visited[item.id] {
		s.opts.Logger.Debug("step %d: stale pop %s (d=%d)", s.steps, item.node, item.dist)
		s.last = s.snapshot(true)

		return s.last, true
	}

	// 3) Finalize.
	u := item.id
	s.visited[u] = true
	s.current = u

	// 4) Target reached.
	if u == s.end {
		s.path = s.reconstruct()
		s.status = StatusFound
		s.opts.Logger.Info("found %s after %d steps: cost %d, %d nodes",
			item.node, s.steps, s.dist[u], len(s.path))
		s.last = s.snapshot(false)

		return s.last, true
	}

	// 5) Relax outgoing edges.
	s.relax(u, item.dist)
	s.opts.Logger.Debug("step %d: expanded %s (d=%d), frontier %d", s.steps, item.node, item.dist, s.pq.Len())
	s.last = s.snapshot(false)

	return s.last, true
}

// relax examines each arc out of u whose target is unvisited.
// d is the popped distance of u, which equals dist[u] for a non-stale pop.
// A sum that would reach Infinity is never an improvement.
func (s *Stepper) relax(u int, d int64) {
	from := s.g.NodeAt(u)
	for _, a := range s.g.Arcs(u) {
		if s.visited[a.To] {
			continue
		}
		to := s.g.NodeAt(a.To)
		s.edge = &core.Edge{From: from, To: to, Weight: a.Weight}

		if a.Weight > Infinity-1-d {
			continue
		}
		cand := d + a.Weight
		if cand >= s.dist[a.To] {
			continue
		}
		s.dist[a.To] = cand
		s.prev[a.To] = u
		heap.Push(&s.pq, &nodeItem{id: a.To, node: to, dist: cand})
	}
}

// reconstruct walks predecessors from end back to start and reverses.
func (s *Stepper) reconstruct() []core.Node {
	var rev []core.Node
	for v := s.end; v != noPrev; v = s.prev[v] {
		rev = append(rev, s.g.NodeAt(v))
	}
	path := make([]core.Node, len(rev))
	for i, n := range rev {
		path[len(rev)-1-i] = n
	}

	return path
}

// snapshot deep-copies the traversal state into a State.
func (s *Stepper) snapshot(stale bool) State {
	n := s.g.NodeCount()
	st := State{
		Visited:     make(map[core.Node]bool),
		CurrentPath: make([]core.Node, len(s.path)),
		Distances:   make(map[core.Node]int64, n),
		Previous:    make(map[core.Node]*core.Node, n),
		Stale:       stale,
		Step:        s.steps,
		Status:      s.status,
	}
	copy(st.CurrentPath, s.path)
	if s.current != noPrev {
		cur := s.g.NodeAt(s.current)
		st.CurrentNode = &cur
	}
	if s.edge != nil {
		e := *s.edge
		st.ProcessingEdge = &e
	}
	for id := 0; id < n; id++ {
		node := s.g.NodeAt(id)
		st.Distances[node] = s.dist[id]
		if s.visited[id] {
			st.Visited[node] = true
		}
		if p := s.prev[id]; p != noPrev {
			pn := s.g.NodeAt(p)
			st.Previous[node] = &pn
		} else {
			st.Previous[node] = nil
		}
	}

	return st
}

// State returns the latest snapshot without stepping.
func (s *Stepper) State() State {
	return s.last
}

// Status returns the current lifecycle state.
func (s *Stepper) Status() Status {
	return s.status
}

// Steps returns the number of transitions taken since Reset.
func (s *Stepper) Steps() int {
	return s.steps
}

// Endpoints returns the fixed start and end nodes.
func (s *Stepper) Endpoints() (core.Node, core.Node) {
	return s.g.NodeAt(s.start), s.g.NodeAt(s.end)
}

// Run steps until a terminal state and returns the final snapshot.
func (s *Stepper) Run() State {
	for {
		if _, ok := s.Step(); !ok || s.status.Terminal() {
			return s.last
		}
	}
}

// PathCost sums the cheapest edge weight between consecutive nodes of path.
// An empty or single-node path costs 0. Returns ErrBrokenPath when some
// consecutive pair is not joined by a directed edge.
func PathCost(g *core.Graph, path []core.Node) (int64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	var total int64
	for i := 0; i+1 < len(path); i++ {
		best := Infinity
		for _, e := range g.Edges(path[i]) {
			if e.To == path[i+1] && e.Weight < best {
				best = e.Weight
			}
		}
		if best == Infinity {
			return 0, fmt.Errorf("%w: no edge %s->%s", ErrBrokenPath, path[i], path[i+1])
		}
		total += best
	}

	return total, nil
}
