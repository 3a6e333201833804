package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start node is not a member of the graph.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Undirected makes every edge traversable in both directions.
	Undirected bool

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(n core.Node, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns Options with directed traversal, no depth limit
// and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(core.Node, int) error { return nil },
	}
}

// WithUndirected treats edges as undirected for this traversal only.
func WithUndirected() Option {
	return func(o *Options) {
		o.Undirected = true
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(n core.Node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: hop distance of every reached node from the start.
//   - Parent: predecessor of every reached node except the start.
type Result struct {
	Order  []core.Node
	Depth  map[core.Node]int
	Parent map[core.Node]core.Node
}

// Reached reports whether n was visited.
func (r *Result) Reached(n core.Node) bool {
	_, ok := r.Depth[n]
	return ok
}

// PathTo reconstructs the hop-shortest path from the start node to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest core.Node) ([]core.Node, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %s", dest)
	}
	path := []core.Node{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
