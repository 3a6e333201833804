// File: types.go
// Role: Node, Edge and Arc value types plus sentinel errors for core.
// Determinism:
//   - Node.Less is the single total order used for tie-breaks everywhere.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node outside the node set.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDanglingEdge indicates an edge whose target is not a member of the node set.
	ErrDanglingEdge = errors.New("core: edge target is not a node")

	// ErrNonPositiveWeight indicates an edge weight below 1.
	ErrNonPositiveWeight = errors.New("core: edge weight must be >= 1")
)

// MinWeight is the smallest admissible edge weight.
const MinWeight int64 = 1

// Node is a lattice point of the grid.
type Node struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Node{X: x, Y: y}.
func Pt(x, y int) Node { return Node{X: x, Y: y} }

// Less reports whether n sorts before m in lexicographic (x, y) order.
func (n Node) Less(m Node) bool {
	if n.X != m.X {
		return n.X < m.X
	}

	return n.Y < m.Y
}

// String renders the node as "(x,y)".
func (n Node) String() string {
	return fmt.Sprintf("(%d,%d)", n.X, n.Y)
}

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   Node  `json:"from"`
	To     Node  `json:"to"`
	Weight int64 `json:"weight"`
}

// String renders the edge as "(x1,y1)->(x2,y2)[w]".
func (e Edge) String() string {
	return fmt.Sprintf("%s->%s[%d]", e.From, e.To, e.Weight)
}

// Arc is the ID-indexed form of an outgoing edge: target node ID and weight.
// Arcs are what hot loops iterate; Edge is what callers and collaborators see.
type Arc struct {
	To     int
	Weight int64
}
