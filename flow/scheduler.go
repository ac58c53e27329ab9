package flow

import (
	"container/heap"

	"github.com/katalvlaran/preflow/core"
)

// heightHeap orders vertices by descending height, then ascending index.
// Heights of queued vertices never change: only the dequeued vertex is
// relabeled.
type heightHeap struct {
	items  []core.VertexIndex
	height func(core.VertexIndex) int
}

func (h heightHeap) Len() int { return len(h.items) }

func (h heightHeap) Less(i, j int) bool {
	hi, hj := h.height(h.items[i]), h.height(h.items[j])
	if hi != hj {
		return hi > hj
	}
	return h.items[i] < h.items[j]
}

func (h heightHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *heightHeap) Push(x any) { h.items = append(h.items, x.(core.VertexIndex)) }

func (h *heightHeap) Pop() any {
	old := h.items
	n := len(old)
	v := old[n-1]
	h.items = old[:n-1]
	return v
}

// scheduler is the highest-label work-list with set semantics.
type scheduler struct {
	heap   heightHeap
	queued []bool
}

func newScheduler(n int, height func(core.VertexIndex) int) *scheduler {
	return &scheduler{
		heap:   heightHeap{items: make([]core.VertexIndex, 0, n), height: height},
		queued: make([]bool, n),
	}
}

// Enqueue adds v unless already present and reports whether it was added.
func (s *scheduler) Enqueue(v core.VertexIndex) bool {
	if s.queued[v] {
		return false
	}
	s.queued[v] = true
	heap.Push(&s.heap, v)
	return true
}

// Dequeue removes the highest vertex.
func (s *scheduler) Dequeue() (core.VertexIndex, bool) {
	if len(s.heap.items) == 0 {
		return core.NoVertex, false
	}
	v := heap.Pop(&s.heap).(core.VertexIndex)
	s.queued[v] = false
	return v, true
}

// Contains reports membership.
func (s *scheduler) Contains(v core.VertexIndex) bool { return s.queued[v] }

// Len returns the number of queued vertices.
func (s *scheduler) Len() int { return len(s.heap.items) }
