package sat

import (
	"sort"

	"github.com/matzehuels/stacktower/pkg/convert"
)

// ConvertToSAT builds a CNF formula satisfiable iff the interval-based
// orientation instance ipi admits an assignment where every vertex's
// outdegree stays at most outdegBound. Each interval becomes a formula
// variable (numbered by its 1-based position in ipi.Intervals); each
// clause rules out one (outdegBound+1)-sized set of pairwise-overlapping
// intervals all sharing a node from being simultaneously assigned to that
// shared node.
func ConvertToSAT(ipi convert.ProblemInstance, outdegBound int) *Formula {
	phi := &Formula{}
	var currentPath []int
	convertToSATHelper(&currentPath, [2]int{0, ipi.Timeframe}, 0, ipi.Intervals, outdegBound+1, phi)
	return phi
}

// convertToSATHelper enumerates every chain of stepsLeft pairwise-
// overlapping intervals sharing a common node, starting the search at
// startIdx and pruning as soon as the running timespan intersection goes
// empty or no shared node remains possible.
func convertToSATHelper(currentPath *[]int, currentTimespan [2]int, startIdx int, intervals []convert.Interval, stepsLeft int, phi *Formula) {
	if stepsLeft == 0 {
		phi.AddClause(buildClause(*currentPath, intervals))
		return
	}

	for i := startIdx; i < len(intervals); i++ {
		iv := intervals[i]
		newStart := currentTimespan[0]
		if s := int(iv.StartTime); s > newStart {
			newStart = s
		}
		newEnd := currentTimespan[1]
		if e := int(iv.EndTime); e < newEnd {
			newEnd = e
		}
		if newStart > newEnd {
			continue
		}

		var commonNodeExists bool
		switch len(*currentPath) {
		case 0:
			commonNodeExists = true
		case 1:
			first := intervals[(*currentPath)[0]]
			commonNodeExists = first.A == iv.A || first.A == iv.B || first.B == iv.A || first.B == iv.B
		default:
			commonNode := getCommonNode(*currentPath, intervals)
			commonNodeExists = iv.A == commonNode || iv.B == commonNode
		}
		if !commonNodeExists {
			continue
		}

		*currentPath = append(*currentPath, i)
		convertToSATHelper(currentPath, [2]int{newStart, newEnd}, i+1, intervals, stepsLeft-1, phi)
		*currentPath = (*currentPath)[:len(*currentPath)-1]
	}
}

// getCommonNode returns the node shared by every interval on path.
//
// getCommonNode panics if path is empty or no such node exists; a caller
// only reaches this once convertToSATHelper has already confirmed a common
// node is possible at every step, so either failure mode indicates a bug in
// that earlier check.
func getCommonNode(path []int, intervals []convert.Interval) int {
	if len(path) == 0 {
		panic("sat: getCommonNode called on an empty path")
	}
	occurrences := map[int]int{}
	for _, idx := range path {
		iv := intervals[idx]
		occurrences[iv.A]++
		occurrences[iv.B]++
	}

	keys := make([]int, 0, len(occurrences))
	for k := range occurrences {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, x := range keys {
		if occurrences[x] == len(path) {
			return x
		}
	}
	panic("sat: no node common to every interval on the path")
}

// buildClause describes path's intervals as a clause: each interval's
// variable (its 1-based index into ipi.Intervals) appears positively iff
// its first endpoint is the node this whole chain shares.
func buildClause(path []int, intervals []convert.Interval) Clause {
	commonNode := getCommonNode(path, intervals)
	clause := make(Clause, 0, len(path))
	for _, idx := range path {
		iv := intervals[idx]
		polarity := Negative
		if iv.A == commonNode {
			polarity = Positive
		}
		clause = append(clause, Literal{Polarity: polarity, Index: VarIndex(idx + 1)})
	}
	return clause
}
