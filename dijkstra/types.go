// Package dijkstra defines the Stepper lifecycle, its snapshot type and
// functional options.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
	"github.com/katalvlaran/gridpath/log"
)

// Sentinel errors returned by NewStepper and PathCost.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that start or end is not a graph member.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrInvalidGraph indicates that the graph violates its structural invariants.
	ErrInvalidGraph = errors.New("dijkstra: invalid graph")

	// ErrBrokenPath indicates that two consecutive path nodes are not joined by an edge.
	ErrBrokenPath = errors.New("dijkstra: path is not a walk in the graph")
)

// Infinity is the distance of nodes not yet reached. It compares greater than
// any finite accumulated distance and is never reported as a path length.
const Infinity int64 = math.MaxInt64

// Status is the lifecycle state of a Stepper.
type Status int

const (
	// StatusInitialized means Reset ran and no step has been taken yet.
	StatusInitialized Status = iota
	// StatusRunning means at least one step ran and the end was not finalized yet.
	StatusRunning
	// StatusFound means the end node was popped and CurrentPath is set.
	StatusFound
	// StatusExhausted means the frontier emptied before reaching the end.
	StatusExhausted
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusRunning:
		return "running"
	case StatusFound:
		return "found"
	case StatusExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Terminal reports whether no further transition can leave s.
func (s Status) Terminal() bool {
	return s == StatusFound || s == StatusExhausted
}

// State is an immutable snapshot of the traversal after one transition.
// Every map and slice is a private copy, so a State may be retained or
// shared across goroutines while the Stepper keeps running.
type State struct {
	// CurrentNode is the node popped and finalized most recently; nil before
	// the first non-stale pop.
	CurrentNode *core.Node
	// Visited is the set of finalized nodes.
	Visited map[core.Node]bool
	// CurrentPath runs from start to end; empty until StatusFound.
	CurrentPath []core.Node
	// ProcessingEdge is the last edge examined during node expansion; nil
	// until some edge has been examined.
	ProcessingEdge *core.Edge
	// Distances holds the best known distance of every node (Infinity if unreached).
	Distances map[core.Node]int64
	// Previous maps every node to its predecessor on the best known path, or nil.
	Previous map[core.Node]*core.Node
	// Stale is true when this transition popped an already visited node.
	Stale bool
	// Step counts the transitions taken since Reset, stale pops included.
	Step int
	// Status is the lifecycle state after this transition.
	Status Status
}

// Options configures a Stepper.
type Options struct {
	// Logger receives one debug line per transition and one info line on
	// reaching a terminal state. Defaults to log.NoOpLogger.
	Logger log.Logger
}

// Option is a functional option for NewStepper.
type Option func(*Options)

// WithLogger routes transition diagnostics to logger. Panics on nil.
func WithLogger(logger log.Logger) Option {
	if logger == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = logger
	}
}

// DefaultOptions returns Options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: log.NoOpLogger{}}
}
