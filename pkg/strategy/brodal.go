package strategy

import (
	"math"

	"github.com/matzehuels/stacktower/pkg/generator"
	"github.com/matzehuels/stacktower/pkg/graph"
)

// OrientByBrodalStrategy implements Brodal and Fagerberg's "Dynamic
// Representations of Sparse Graphs" (Lemma 3) online strategy. It applies
// to forests only (opi.Alpha must be 1): it builds an optimal 1-orientation
// of the final graph state, then walks the operation sequence backward,
// maintaining the invariant that every vertex's outdegree stays at most
// outdegBound via at most O(log V) edge flips per operation. It returns the
// total number of flips performed.
//
// OrientByBrodalStrategy panics if opi.Alpha != 1 or outdegBound <= 1,
// mirroring the reference implementation's assumptions.
func OrientByBrodalStrategy(opi generator.ProblemInstance, outdegBound int) int {
	if opi.Alpha != 1 {
		panic("strategy: Brodal's strategy applies to forests only (alpha must be 1)")
	}
	if outdegBound <= 1 {
		panic("strategy: Brodal's strategy requires outdegBound > 1")
	}

	timeframe := len(opi.Sequence)
	graphs := make([]*graph.Forest, timeframe)
	for i := range graphs {
		graphs[i] = graph.NewForest(opi.V)
	}
	orientation := graph.NewForestOrientation(opi.V)

	buildGraphsHistory(opi.Sequence, graphs)
	constructOptimalOrientation(graphs[len(graphs)-1], orientation)

	totalFlips := 0
	propagateBack(opi.Sequence, orientation, outdegBound, &totalFlips)
	return totalFlips
}

// propagateBack reviews sequence in reverse chronological order, undoing
// each INSERT by removing whichever direction the edge ended up oriented
// and re-establishing each DELETE by orienting the edge away from u, making
// room for it with a short flip path first if u is already at outdegBound.
//
// The INSERT branch assumes the edge is oriented one way or the other at
// the point it is undone; it does not fall back to a no-op if neither
// direction holds; RemoveEdge panics in that case instead of this function
// silently doing nothing, exactly reproducing the reference algorithm's
// unchecked assumption about the orientation it is walking back through.
func propagateBack(sequence []generator.Command, orientation *graph.ForestOrientation, outdegBound int, totalFlips *int) {
	for t := len(sequence) - 1; t >= 0; t-- {
		cmd := sequence[t]
		u, v := cmd.A, cmd.B
		if cmd.Operation == generator.Insert {
			if orientation.IsOriented(u, v) {
				orientation.RemoveEdge(u, v)
			} else {
				orientation.RemoveEdge(v, u)
			}
			continue
		}
		if orientation.GetOutdegree(u) < outdegBound {
			orientation.OrientEdge(u, v)
		} else {
			flipOnShortPath(orientation, u, outdegBound, totalFlips)
			orientation.OrientEdge(u, v)
		}
	}
}

// flipOnShortPath finds an at-most-logarithmic-length directed path from
// startNode to some vertex with outdegree below outdegBound, and reverses
// every edge along it, freeing up outdegree at startNode. Such a path is
// guaranteed to exist by Brodal and Fagerberg's argument; flipOnShortPath
// panics if the search comes back empty, which would indicate that
// guarantee was violated upstream.
func flipOnShortPath(orientation *graph.ForestOrientation, startNode, outdegBound int, totalFlips *int) {
	v := orientation.GetV()
	limit := int(math.Ceil(math.Log2(float64(v)) / math.Log2(float64(outdegBound))))
	visited := make([]bool, v)
	currentPath := []int{startNode}
	var foundPath []int

	seekShortPath(startNode, limit, outdegBound, visited, orientation, &currentPath, &foundPath)

	if len(foundPath) == 0 {
		panic("strategy: no short flip path found (outdegree bound guarantee violated)")
	}

	for p := 1; p < len(foundPath); p++ {
		orientation.FlipEdge(foundPath[p-1], foundPath[p])
	}
	*totalFlips += len(foundPath) - 1
}

// seekShortPath performs a depth-limited DFS for the shortest path to a
// vertex with spare outdegree. Ties among equal-length candidate paths are
// broken in DFS-visit order (strict less-than comparison): the first
// shortest path found wins, and an equally short path discovered later does
// not replace it.
func seekShortPath(v, distanceLeft, outdegBound int, visited []bool, orientation *graph.ForestOrientation, currentPath, foundPath *[]int) {
	visited[v] = true

	if orientation.GetOutdegree(v) < outdegBound {
		if len(*foundPath) == 0 || len(*currentPath) < len(*foundPath) {
			*foundPath = append([]int(nil), (*currentPath)...)
		}
	}

	if distanceLeft > 0 {
		for _, neighbour := range orientation.GetOutNeighbours(v) {
			if !visited[neighbour] {
				*currentPath = append(*currentPath, neighbour)
				seekShortPath(neighbour, distanceLeft-1, outdegBound, visited, orientation, currentPath, foundPath)
				*currentPath = (*currentPath)[:len(*currentPath)-1]
			}
		}
	}
}
