package graph

import (
	"fmt"
	"strings"
)

// dotPalette cycles forest colours in BoundedArbGraph.PrintDescription, one
// colour per forest index modulo its length.
var dotPalette = []string{"navy", "red", "darkgreen", "chocolate", "purple", "dimgray", "black"}

// BoundedArbGraph represents a graph of arboricity at most alpha as an
// ordered tuple of alpha edge-disjoint forests: an edge is accepted into
// forest i only if it is not already adjacent in any forest.
type BoundedArbGraph struct {
	v       int
	alpha   int
	forests []*Forest
}

// NewBoundedArbGraph returns an empty graph on V vertices decomposed into
// alpha forests.
func NewBoundedArbGraph(v, alpha int) *BoundedArbGraph {
	forests := make([]*Forest, alpha)
	for i := range forests {
		forests[i] = NewForest(v)
	}
	return &BoundedArbGraph{v: v, alpha: alpha, forests: forests}
}

// IsAdjacent reports whether {va, vb} is present in any of the graph's
// forests.
func (g *BoundedArbGraph) IsAdjacent(va, vb int) bool {
	for _, f := range g.forests {
		if f.IsAdjacent(va, vb) {
			return true
		}
	}
	return false
}

// InsertEdge adds {va, vb} to forest forestIndex, rejecting the insert (and
// returning false) if the edge is already adjacent in any forest of the
// graph, regardless of index.
func (g *BoundedArbGraph) InsertEdge(forestIndex, va, vb int) bool {
	if g.IsAdjacent(va, vb) {
		return false
	}
	return g.forests[forestIndex].InsertEdge(va, vb)
}

// DeleteEdge removes {va, vb} from whichever forest holds it.
func (g *BoundedArbGraph) DeleteEdge(va, vb int) {
	for _, f := range g.forests {
		f.DeleteEdge(va, vb)
	}
}

// GetEdgeCount returns the total edge count across all forests.
func (g *BoundedArbGraph) GetEdgeCount() int {
	total := 0
	for _, f := range g.forests {
		total += f.GetEdgeCount()
	}
	return total
}

// GetEdge returns the index-th edge across the graph's forests, forests
// concatenated in index order.
//
// GetEdge panics if index is out of range. The reference implementation
// this is ported from has no fallback after exhausting every forest in its
// search loop; a caller that respects the documented precondition never
// reaches it, but this port makes the violation a deterministic panic
// rather than undefined behaviour.
func (g *BoundedArbGraph) GetEdge(index int) (int, int) {
	if index < 0 || index >= g.GetEdgeCount() {
		panic("graph: edge index out of range")
	}
	for _, f := range g.forests {
		if index-f.GetEdgeCount() >= 0 {
			index -= f.GetEdgeCount()
		} else {
			return f.GetEdge(index)
		}
	}
	panic("graph: edge index not found in any forest")
}

// PrintDescription renders the graph as an undirected Graphviz DOT graph,
// colouring each forest's edges by its index modulo the palette length.
func (g *BoundedArbGraph) PrintDescription() string {
	var b strings.Builder
	b.WriteString("graph {\n  node [margin=0 shape=circle style=filled]\n  edge [penwidth=5]\n")
	for i, f := range g.forests {
		fmt.Fprintf(&b, "  edge [color=%s]\n", dotPalette[i%len(dotPalette)])
		for _, e := range f.GetAllEdges() {
			fmt.Fprintf(&b, "  %d -- %d\n", e[0], e[1])
		}
	}
	b.WriteString("}\n")
	return b.String()
}
