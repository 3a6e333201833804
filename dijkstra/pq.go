package dijkstra

import "github.com/katalvlaran/gridpath/core"

// nodeItem is one frontier entry: a node ID with its tentative distance.
type nodeItem struct {
	id   int       // graph node ID
	node core.Node // coordinates, used for tie-breaking
	dist int64     // accumulated distance from start
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, x, y).
// Duplicates for the same node are allowed ("lazy decrease-key"); the
// outdated ones surface later as stale pops.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then lexicographically by coordinates.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node.Less(pq[j].node)
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a *nodeItem. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
