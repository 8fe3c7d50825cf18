package search

import (
	"container/heap"

	"github.com/freecell-solver/freecell-solver/freecell"
)

// node is a single frontier entry. It stores only a parent pointer and
// the move that produced it, not the full path-from-root: carrying a full
// path per node would dominate memory at the node counts this engine
// explores. The path is reconstructed by walking parent pointers once, on
// success (see reconstructPath in solver.go).
type node struct {
	state   freecell.GameState
	fScore  int
	gScore  int
	counter uint64
	parent  *node
	move    freecell.Move
}

// frontierHeap implements container/heap.Interface, ordering ascending by
// fScore and, on ties, by ascending counter: earlier insertions win ties.
type frontierHeap []*node

func (h frontierHeap) Len() int { return len(h) }

func (h frontierHeap) Less(i, j int) bool {
	if h[i].fScore != h[j].fScore {
		return h[i].fScore < h[j].fScore
	}
	return h[i].counter < h[j].counter
}

func (h frontierHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontierHeap) Push(x interface{}) {
	*h = append(*h, x.(*node))
}

func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Frontier is a min-priority queue of search nodes, keyed by fScore with a
// monotonic insertion counter as tiebreaker. The engine runs on a single
// goroutine, so Frontier is not safe for concurrent use.
type Frontier struct {
	h       frontierHeap
	counter uint64
}

// newFrontier returns an empty frontier.
func newFrontier() *Frontier {
	f := &Frontier{}
	heap.Init(&f.h)
	return f
}

// push inserts n, stamping it with the next insertion counter and
// restoring heap order.
func (f *Frontier) push(n *node) {
	n.counter = f.counter
	f.counter++
	heap.Push(&f.h, n)
}

// popMin removes and returns the node with the lowest fScore (ties broken
// by insertion order). Callers must check Len first; popMin panics on an
// empty frontier.
func (f *Frontier) popMin() *node {
	return heap.Pop(&f.h).(*node)
}

// Len returns the number of nodes currently queued.
func (f *Frontier) Len() int {
	return f.h.Len()
}
