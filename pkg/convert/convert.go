// Package convert translates a generated edge insert/delete sequence into
// the equivalent interval-based problem: every edge's successive
// insert/delete pairs become one Interval spanning [startTime, endTime].
package convert

import (
	"fmt"
	"io"
	"sort"

	"github.com/matzehuels/stacktower/pkg/generator"
)

// IntervalStatus records whether, and which, endpoint a solver has
// assigned an interval's orientation to.
type IntervalStatus int

const (
	NotSet IntervalStatus = iota
	FirstNodeSelected
	SecondNodeSelected
)

// Interval is a single edge's occurrence in the graph, expressed as the
// closed time range [StartTime, EndTime] it was present for.
type Interval struct {
	StartTime, EndTime uint
	A, B               int
	Status             IntervalStatus
	Score              uint
}

// AssignedNode returns whichever endpoint this interval is currently
// oriented toward.
//
// AssignedNode panics if Status is NotSet, since there is no assigned node
// to return.
func (iv Interval) AssignedNode() int {
	switch iv.Status {
	case FirstNodeSelected:
		return iv.A
	case SecondNodeSelected:
		return iv.B
	default:
		panic("convert: interval has no assigned node")
	}
}

func (iv Interval) String() string {
	description := fmt.Sprintf("{%d, %d} FROM %d TO %d", iv.A, iv.B, iv.StartTime, iv.EndTime)
	switch iv.Status {
	case FirstNodeSelected:
		return fmt.Sprintf("%s (SET %d)\n", description, iv.A)
	case SecondNodeSelected:
		return fmt.Sprintf("%s (SET %d)\n", description, iv.B)
	default:
		return description + " (NOT SET)\n"
	}
}

// ProblemInstance is a complete interval-based orientation problem.
type ProblemInstance struct {
	V, Alpha, Timeframe int
	Intervals           []Interval
}

// PrintIntervals writes the header line followed by one line per interval.
func (p ProblemInstance) PrintIntervals(w io.Writer) {
	fmt.Fprintf(w, "|V| = %d, alpha = %d, timeframe = %d\n", p.V, p.Alpha, p.Timeframe)
	for _, iv := range p.Intervals {
		io.WriteString(w, iv.String())
	}
}

type edgeKey struct{ a, b int }

// Instance translates a generated insert/delete command sequence into an
// interval-based problem instance: each edge's successive insert/delete
// timestamps are paired up into intervals, and an edge left inserted at the
// end of the sequence gets one final interval running to the artificial
// "timeframe - 1" timestamp.
func Instance(opi generator.ProblemInstance) ProblemInstance {
	timeframe := len(opi.Sequence) + 1
	ipi := ProblemInstance{V: opi.V, Alpha: opi.Alpha, Timeframe: timeframe}

	history := map[edgeKey][]int{}
	var order []edgeKey
	for t, cmd := range opi.Sequence {
		key := edgeKey{cmd.A, cmd.B}
		if _, seen := history[key]; !seen {
			order = append(order, key)
		}
		history[key] = append(history[key], t)
	}
	// std::map<pair<int,int>, ...> iterates sorted by key; a plain Go map
	// has no iteration order, so edges are replayed in ascending
	// (a, b) order explicitly to match.
	sort.Slice(order, func(i, j int) bool {
		if order[i].a != order[j].a {
			return order[i].a < order[j].a
		}
		return order[i].b < order[j].b
	})

	for _, key := range order {
		timestamps := history[key]
		n := len(timestamps)
		for i := 0; i < n/2; i++ {
			ipi.Intervals = append(ipi.Intervals, Interval{
				StartTime: uint(timestamps[2*i]),
				EndTime:   uint(timestamps[2*i+1]),
				A:         key.a, B: key.b,
			})
		}
		if n%2 == 1 {
			ipi.Intervals = append(ipi.Intervals, Interval{
				StartTime: uint(timestamps[n-1]),
				EndTime:   uint(len(opi.Sequence)),
				A:         key.a, B: key.b,
			})
		}
	}
	return ipi
}
