package strategy

import (
	"math"

	"github.com/matzehuels/stacktower/pkg/generator"
	"github.com/matzehuels/stacktower/pkg/graph"
)

// OrientByKowalikStrategy implements Kowalik's offline orientation
// strategy. It applies to forests only (opi.Alpha must be 1) and introduces
// no edge reorientations across the sequence, at the cost of a logarithmic
// (rather than constant) outdegree bound. It returns the largest outdegree
// that appears anywhere over the sequence.
//
// OrientByKowalikStrategy panics if opi.Alpha != 1, if the divide-and-
// conquer construction incurs any reorientation (which the algorithm
// guarantees never happens), or if the resulting max outdegree exceeds the
// theoretical floor(log2(timeframe))+1 bound — all defects that would
// indicate a bug in the construction, not a runtime condition to recover
// from.
func OrientByKowalikStrategy(opi generator.ProblemInstance) int {
	if opi.Alpha != 1 {
		panic("strategy: Kowalik's strategy applies to forests only (alpha must be 1)")
	}

	timeframe := len(opi.Sequence)
	graphs := make([]*graph.Forest, timeframe)
	orientations := make([]*graph.ForestOrientation, timeframe)
	for i := range graphs {
		graphs[i] = graph.NewForest(opi.V)
		orientations[i] = graph.NewForestOrientation(opi.V)
	}

	buildGraphsHistory(opi.Sequence, graphs)
	constructOrientations(orientations, graphs, 0, timeframe-1)

	if countTotalFlips(orientations) != 0 {
		panic("strategy: Kowalik's construction incurred a reorientation")
	}

	maxOutdegree := getMaxOutdegree(orientations)
	bound := int(math.Floor(math.Log2(float64(timeframe)))) + 1
	if maxOutdegree > bound {
		panic("strategy: Kowalik's logarithmic outdegree bound was violated")
	}
	return maxOutdegree
}

// constructOrientations recursively builds a reorientation-free sequence of
// orientations over [startTime, endTime]: it solves each half
// independently, builds an optimal orientation for the midpoint, and then
// flips whichever half-interval edges disagree with the midpoint's
// orientation so the whole range agrees with it.
func constructOrientations(orientations []*graph.ForestOrientation, graphs []*graph.Forest, startTime, endTime int) {
	if startTime == endTime {
		constructOptimalOrientation(graphs[startTime], orientations[startTime])
		return
	}

	midTime := startTime + (endTime-startTime+1)/2
	constructOrientations(orientations, graphs, startTime, midTime-1)
	if midTime+1 <= endTime {
		constructOrientations(orientations, graphs, midTime+1, endTime)
	}

	constructOptimalOrientation(graphs[midTime], orientations[midTime])
	for _, e := range orientations[midTime].GetAllEdges() {
		from, to := e[0], e[1]
		for t := startTime; t <= endTime; t++ {
			if orientations[t].IsOriented(to, from) {
				orientations[t].FlipEdge(to, from)
			}
		}
	}
}
