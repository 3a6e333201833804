// Package stats summarizes edge weights of a finished graph.
//
// The summary feeds the render package, which maps each weight to a
// brightness relative to the mean. The algorithm packages never use it.
package stats

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/core"
)

// ErrNoEdges indicates that mean and deviation are undefined because the
// graph has no edges.
var ErrNoEdges = errors.New("stats: graph has no edges")

// ErrNilGraph indicates a nil *core.Graph.
var ErrNilGraph = errors.New("stats: graph is nil")

// Brightness bounds.
const (
	MinBrightness = 0.2
	MaxBrightness = 1.0
)

// Summary describes the edge weight distribution.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // population standard deviation
	Min    int64
	Max    int64
}

// WeightStats computes the Summary over every directed edge of g.
// Returns ErrNoEdges for an edgeless graph.
// Complexity: O(E), two passes.
func WeightStats(g *core.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrNilGraph
	}
	edges := g.AllEdges()
	if len(edges) == 0 {
		return Summary{}, fmt.Errorf("WeightStats: %d nodes: %w", g.NodeCount(), ErrNoEdges)
	}

	s := Summary{Count: len(edges), Min: edges[0].Weight, Max: edges[0].Weight}
	var sum float64
	for _, e := range edges {
		sum += float64(e.Weight)
		if e.Weight < s.Min {
			s.Min = e.Weight
		}
		if e.Weight > s.Max {
			s.Max = e.Weight
		}
	}
	s.Mean = sum / float64(s.Count)

	var sq float64
	for _, e := range edges {
		d := float64(e.Weight) - s.Mean
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / float64(s.Count))

	return s, nil
}

// Brightness maps weight to [MinBrightness, MaxBrightness]: weights at or
// below the mean are fully bright, and brightness falls by half per standard
// deviation above it. A zero deviation yields MaxBrightness.
func Brightness(weight int64, s Summary) float64 {
	if s.StdDev == 0 || math.IsNaN(s.StdDev) {
		return MaxBrightness
	}
	b := 1 - (float64(weight)-s.Mean)/(2*s.StdDev)

	return math.Max(MinBrightness, math.Min(MaxBrightness, b))
}
