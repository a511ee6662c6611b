// Package graph implements the workbench's graph layer: an edge-disjoint
// forest decomposition (Forest), a fixed-arity bundle of such forests
// (BoundedArbGraph) used to represent a graph of bounded arboricity alpha,
// and an orientation of a graph's edges (ForestOrientation) that tracks
// per-vertex outdegree.
//
// Forest uses pkg/linkcut as an online cycle oracle: an edge is only
// accepted if its endpoints are not already connected, which keeps every
// forest acyclic by construction.
package graph

import (
	"fmt"
	"strings"

	"github.com/matzehuels/stacktower/pkg/bst"
	"github.com/matzehuels/stacktower/pkg/linkcut"
)

// encodeEdge packs a canonicalised (a, b) pair, a <= b, into a single int64
// so the edge multiset can reuse the generic order-statistics bst.Tree
// instead of a bespoke pair-keyed tree.
func encodeEdge(a, b, v int) int64 {
	return int64(a)*int64(v) + int64(b)
}

func decodeEdge(code int64, v int) (int, int) {
	a := int(code / int64(v))
	b := int(code % int64(v))
	return a, b
}

func canon(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// Forest is an acyclic, edge-disjoint subgraph on vertices [0, V).
type Forest struct {
	v         int
	edgeCount int
	edges     *bst.Tree[int64]
	links     *linkcut.Forest
}

// NewForest returns an empty forest on V vertices.
func NewForest(v int) *Forest {
	return &Forest{
		v:     v,
		edges: bst.New[int64](),
		// linkcut.Forest labels vertices [1, V]; Forest itself is
		// 0-indexed to match the rest of this package, so callers are
		// shifted by one at the linkcut boundary.
		links: linkcut.New(v),
	}
}

func (f *Forest) checkVertex(v int) {
	if v < 0 || v >= f.v {
		panic("graph: vertex out of range")
	}
}

// IsAdjacent reports whether the edge {va, vb} is present in this forest.
func (f *Forest) IsAdjacent(va, vb int) bool {
	f.checkVertex(va)
	f.checkVertex(vb)
	a, b := canon(va, vb)
	return f.edges.Contains(encodeEdge(a, b, f.v))
}

// InsertEdge adds the edge {va, vb}, returning false without modifying the
// forest if va == vb or if va and vb are already connected (inserting would
// create a cycle).
func (f *Forest) InsertEdge(va, vb int) bool {
	f.checkVertex(va)
	f.checkVertex(vb)
	a, b := canon(va, vb)
	if a == b || f.links.Connected(a+1, b+1) {
		return false
	}
	f.edges.Insert(encodeEdge(a, b, f.v))
	f.links.Link(a+1, b+1)
	f.edgeCount++
	return true
}

// DeleteEdge removes the edge {va, vb}. It is a no-op if the edge is absent.
func (f *Forest) DeleteEdge(va, vb int) {
	f.checkVertex(va)
	f.checkVertex(vb)
	if !f.IsAdjacent(va, vb) {
		return
	}
	a, b := canon(va, vb)
	f.edges.Remove(encodeEdge(a, b, f.v))
	f.links.Cut(a+1, b+1)
	f.edgeCount--
}

// GetEdge returns the index-th edge in this forest's internal enumeration
// order. GetEdge panics if index is out of [0, GetEdgeCount()).
func (f *Forest) GetEdge(index int) (int, int) {
	if index < 0 || index >= f.edgeCount {
		panic("graph: edge index out of range")
	}
	return decodeEdge(f.edges.Nth(index), f.v)
}

// GetAllEdges returns every edge currently in this forest.
func (f *Forest) GetAllEdges() [][2]int {
	codes := f.edges.Collect()
	result := make([][2]int, len(codes))
	for i, code := range codes {
		a, b := decodeEdge(code, f.v)
		result[i] = [2]int{a, b}
	}
	return result
}

// GetV returns the vertex count.
func (f *Forest) GetV() int { return f.v }

// GetEdgeCount returns the number of edges currently in this forest.
func (f *Forest) GetEdgeCount() int { return f.edgeCount }

// PrintDescription renders this forest as an undirected Graphviz DOT graph.
func (f *Forest) PrintDescription() string {
	var b strings.Builder
	b.WriteString("graph {\n  node [margin=0 shape=circle style=filled]\n")
	for _, e := range f.GetAllEdges() {
		fmt.Fprintf(&b, "  %d -- %d\n", e[0], e[1])
	}
	b.WriteString("}\n")
	return b.String()
}
