// Package amc implements the Adaptive Minimize Collisions heuristic: a
// greedy solver over an interval-based orientation problem that always
// assigns the highest-scoring unset interval next, where an interval's
// score is the number of already-assigned intervals that overlap it and
// were assigned to one of its endpoints.
package amc

import (
	"container/heap"

	"github.com/matzehuels/stacktower/pkg/convert"
	"github.com/matzehuels/stacktower/pkg/interval"
	"github.com/matzehuels/stacktower/pkg/segtree"
)

// Solve assigns every interval in ipi.Intervals a Status of
// FirstNodeSelected or SecondNodeSelected, and returns the largest
// outdegree any vertex reached over the course of the assignment.
//
// Solve panics if any interval's Status is not NotSet when it reaches the
// front of the queue, which would indicate the same interval was processed
// twice — a defect in the algorithm's bookkeeping, not a runtime condition
// to recover from.
func Solve(ipi *convert.ProblemInstance) int {
	arena := ipi.Intervals

	setTrees := make([]*interval.Tree, ipi.V)
	notsetTrees := make([]*interval.Tree, ipi.V)
	for v := range setTrees {
		setTrees[v] = interval.New()
		notsetTrees[v] = interval.New()
	}
	for i := range arena {
		iv := &arena[i]
		notsetTrees[iv.A].Insert(int(iv.StartTime), int(iv.EndTime))
		notsetTrees[iv.B].Insert(int(iv.StartTime), int(iv.EndTime))
	}

	outdeg := make([]*segtree.Tree[uint8], ipi.V)
	for v := range outdeg {
		outdeg[v] = segtree.New[uint8](ipi.Timeframe, segtree.PlusMax[uint8](0))
	}

	dict := make(map[timeBounds]int, len(arena))
	for i := range arena {
		iv := &arena[i]
		dict[timeBounds{iv.StartTime, iv.EndTime}] = i
	}

	queue := newPriorityQueue(arena)
	heap.Init(queue)

	maxOutdegree := 0

	for queue.Len() > 0 {
		idx := queue.peekArenaIndex()
		current := &arena[idx]
		if current.Status != convert.NotSet {
			panic("amc: interval reached the queue front with a status already set")
		}

		notsetTrees[current.A].Remove(int(current.StartTime), int(current.EndTime))
		notsetTrees[current.B].Remove(int(current.StartTime), int(current.EndTime))

		fstCollisions := setTrees[current.A].CountClashes(int(current.StartTime), int(current.EndTime))
		sndCollisions := setTrees[current.B].CountClashes(int(current.StartTime), int(current.EndTime))
		if fstCollisions > sndCollisions {
			current.Status = convert.SecondNodeSelected
		} else {
			current.Status = convert.FirstNodeSelected
		}

		assigned := current.AssignedNode()
		outdeg[assigned].Insert(int(current.StartTime), int(current.EndTime), 1)
		if currentMax := int(outdeg[assigned].Query(int(current.StartTime), int(current.EndTime))); currentMax > maxOutdegree {
			maxOutdegree = currentMax
		}

		setTrees[assigned].Insert(int(current.StartTime), int(current.EndTime))

		// Bump the score of every unset interval clashing with the one
		// just assigned. Each must be removed from the queue before its
		// score changes and reinserted after, since the queue's ordering
		// depends on score and a heap's invariants break if a live
		// element's sort key changes in place.
		for _, clash := range notsetTrees[assigned].GetClashes(int(current.StartTime), int(current.EndTime)) {
			tagIdx := dict[timeBounds{uint(clash.Low), uint(clash.High)}]
			queue.remove(tagIdx)
			arena[tagIdx].Score++
			queue.push(tagIdx)
		}

		queue.remove(idx)
	}
	return maxOutdegree
}

type timeBounds struct{ start, end uint }
