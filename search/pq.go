package search

import (
	"container/heap"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// nodeItem is one frontier entry. seq records insertion order so that equal
// scores pop first-in first-out.
type nodeItem struct {
	node gridgraph.Node
	seq  uint64
}

// nodePQ is a min-heap of nodeItem ordered by node.Score, then seq.
// Entries are never updated in place: a cheaper route is pushed as a new
// entry and the outdated one is skipped when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller score → higher priority; ties FIFO.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].node.Score != pq[j].node.Score {
		return pq[i].node.Score < pq[j].node.Score
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// frontier wraps nodePQ with a sequence counter.
type frontier struct {
	pq  nodePQ
	seq uint64
}

func newFrontier(capacity int) *frontier {
	return &frontier{pq: make(nodePQ, 0, capacity)}
}

func (f *frontier) Len() int { return f.pq.Len() }

func (f *frontier) push(n gridgraph.Node) {
	heap.Push(&f.pq, nodeItem{node: n, seq: f.seq})
	f.seq++
}

func (f *frontier) pop() gridgraph.Node {
	return heap.Pop(&f.pq).(nodeItem).node
}
