package amc

import (
	"testing"

	"github.com/matzehuels/stacktower/pkg/convert"
)

// TestSolveAssignsEveryInterval checks property 9: every interval ends up
// with a Status other than NotSet, and the returned max outdegree matches
// the largest per-vertex concurrent-interval count actually produced.
func TestSolveAssignsEveryInterval(t *testing.T) {
	ipi := &convert.ProblemInstance{
		V: 4, Alpha: 1, Timeframe: 6,
		Intervals: []convert.Interval{
			{StartTime: 0, EndTime: 5, A: 0, B: 1},
			{StartTime: 1, EndTime: 4, A: 0, B: 2},
			{StartTime: 2, EndTime: 3, A: 0, B: 3},
		},
	}
	maxOutdeg := Solve(ipi)

	for _, iv := range ipi.Intervals {
		if iv.Status == convert.NotSet {
			t.Fatalf("interval %+v left unassigned", iv)
		}
	}
	if maxOutdeg <= 0 {
		t.Errorf("maxOutdeg = %d, want > 0 (vertex 0 is shared by every interval)", maxOutdeg)
	}

	// Every interval shares vertex 0 and all three overlap. The first goes
	// to vertex 0 (no clashes anywhere, tie to the first endpoint); each
	// later one then clashes at vertex 0 but not at its other endpoint, so
	// it goes there. Every vertex ends up with at most one interval, and
	// the returned max outdegree equals that per-vertex count.
	counts := map[int]int{}
	for _, iv := range ipi.Intervals {
		counts[iv.AssignedNode()]++
	}
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	if maxCount != 1 {
		t.Errorf("expected every vertex to get at most one interval, counts=%v", counts)
	}
	if maxOutdeg != maxCount {
		t.Errorf("maxOutdeg = %d, want %d (largest per-vertex count)", maxOutdeg, maxCount)
	}
}

func TestSolveNoOverlapOutdegreeOne(t *testing.T) {
	ipi := &convert.ProblemInstance{
		V: 4, Alpha: 1, Timeframe: 10,
		Intervals: []convert.Interval{
			{StartTime: 0, EndTime: 1, A: 0, B: 1},
			{StartTime: 2, EndTime: 3, A: 2, B: 3},
		},
	}
	maxOutdeg := Solve(ipi)
	if maxOutdeg != 1 {
		t.Errorf("maxOutdeg = %d, want 1 (each interval is alone at its assigned vertex)", maxOutdeg)
	}
}
