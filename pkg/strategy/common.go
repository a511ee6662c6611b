// Package strategy implements two edge-orientation strategies for dynamic
// graphs of bounded arboricity: Brodal and Fagerberg's online strategy
// (flip-on-demand, logarithmic worst-case flips per operation) and
// Kowalik's offline strategy (zero reorientations, logarithmic outdegree
// bound, computed by divide and conquer over the whole operation
// sequence).
package strategy

import (
	"github.com/matzehuels/stacktower/pkg/generator"
	"github.com/matzehuels/stacktower/pkg/graph"
)

// buildGraphsHistory reconstructs, for every timestamp t, the Forest as it
// stood immediately after processing sequence[t].
func buildGraphsHistory(sequence []generator.Command, graphs []*graph.Forest) {
	for t := range sequence {
		prev := t - 1
		if prev < 0 {
			prev = 0
		}
		for _, e := range graphs[prev].GetAllEdges() {
			graphs[t].InsertEdge(e[0], e[1])
		}
		cmd := sequence[t]
		if cmd.Operation == generator.Insert {
			graphs[t].InsertEdge(cmd.A, cmd.B)
		} else {
			graphs[t].DeleteEdge(cmd.A, cmd.B)
		}
	}
}

// constructOptimalOrientation orients every edge of forest toward whichever
// root its DFS tree was rooted at, producing an optimal 1-orientation (every
// vertex but the root has outdegree at most 1 along tree edges).
func constructOptimalOrientation(forest *graph.Forest, orientation *graph.ForestOrientation) {
	adjacency := make([][]int, forest.GetV())
	visited := make([]bool, forest.GetV())
	for _, e := range forest.GetAllEdges() {
		u, v := e[0], e[1]
		adjacency[u] = append(adjacency[u], v)
		adjacency[v] = append(adjacency[v], u)
	}
	for root := 0; root < forest.GetV(); root++ {
		if !visited[root] {
			forestTraversal(root, visited, adjacency, orientation)
		}
	}
}

func forestTraversal(v int, visited []bool, adjacency [][]int, orientation *graph.ForestOrientation) {
	visited[v] = true
	for _, neighbour := range adjacency[v] {
		if !visited[neighbour] {
			forestTraversal(neighbour, visited, adjacency, orientation)
			orientation.OrientEdge(neighbour, v)
		}
	}
}

// countFlipsBetween counts edges whose direction reversed between o1 and o2.
func countFlipsBetween(o1, o2 *graph.ForestOrientation) int {
	flips := 0
	for _, e := range o1.GetAllEdges() {
		if o2.IsOriented(e[1], e[0]) {
			flips++
		}
	}
	return flips
}

func countTotalFlips(orientations []*graph.ForestOrientation) int {
	total := 0
	for t := 1; t < len(orientations); t++ {
		total += countFlipsBetween(orientations[t-1], orientations[t])
	}
	return total
}

func getMaxOutdegree(orientations []*graph.ForestOrientation) int {
	max := 0
	for _, o := range orientations {
		if d := o.GetMaxOutdegree(); d > max {
			max = d
		}
	}
	return max
}
