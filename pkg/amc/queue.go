package amc

import (
	"container/heap"

	"github.com/matzehuels/stacktower/pkg/convert"
)

// pqItem tracks one arena interval's current position in the heap, so the
// queue can remove an arbitrary live item in O(log n) when its score
// changes, instead of needing a linear scan.
type pqItem struct {
	arenaIdx int
	heapIdx  int
}

// priorityQueue is a binary heap over arena indices, ordered by each
// interval's current score (highest first) with ascending time bounds as
// the tiebreaker, mirroring the reference implementation's
// std::set<Interval*, ScoreComparator>.
type priorityQueue struct {
	arena []convert.Interval
	items []*pqItem
	index map[int]*pqItem
}

func newPriorityQueue(arena []convert.Interval) *priorityQueue {
	pq := &priorityQueue{
		arena: arena,
		items: make([]*pqItem, 0, len(arena)),
		index: make(map[int]*pqItem, len(arena)),
	}
	for i := range arena {
		item := &pqItem{arenaIdx: i, heapIdx: len(pq.items)}
		pq.items = append(pq.items, item)
		pq.index[i] = item
	}
	return pq
}

func (pq *priorityQueue) Len() int { return len(pq.items) }

func (pq *priorityQueue) Less(i, j int) bool {
	a := &pq.arena[pq.items[i].arenaIdx]
	b := &pq.arena[pq.items[j].arenaIdx]
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.StartTime != b.StartTime {
		return a.StartTime < b.StartTime
	}
	return a.EndTime < b.EndTime
}

func (pq *priorityQueue) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
	pq.items[i].heapIdx = i
	pq.items[j].heapIdx = j
}

func (pq *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.heapIdx = len(pq.items)
	pq.items = append(pq.items, item)
	pq.index[item.arenaIdx] = item
}

func (pq *priorityQueue) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]
	delete(pq.index, item.arenaIdx)
	return item
}

// peekArenaIndex returns the arena index of the current highest-priority
// interval without removing it.
func (pq *priorityQueue) peekArenaIndex() int {
	return pq.items[0].arenaIdx
}

// remove drops the item for arenaIdx from the queue, if still present.
func (pq *priorityQueue) remove(arenaIdx int) {
	item, ok := pq.index[arenaIdx]
	if !ok {
		return
	}
	heap.Remove(pq, item.heapIdx)
}

// push (re)inserts arenaIdx into the queue under its current score.
func (pq *priorityQueue) push(arenaIdx int) {
	heap.Push(pq, &pqItem{arenaIdx: arenaIdx})
}
