package graph

import (
	"fmt"
	"sort"
	"strings"
)

// intSet is a sorted, duplicate-free set of ints backed by a slice, used by
// ForestOrientation to mirror std::set<int>'s ordered-iteration semantics
// for a vertex's neighbourhood (small per-vertex degree, so a sorted slice
// with binary-search insert/remove outperforms a balanced tree here).
type intSet struct {
	items []int
}

func (s *intSet) find(x int) (int, bool) {
	i := sort.SearchInts(s.items, x)
	return i, i < len(s.items) && s.items[i] == x
}

func (s *intSet) contains(x int) bool {
	_, ok := s.find(x)
	return ok
}

func (s *intSet) insert(x int) {
	i, ok := s.find(x)
	if ok {
		return
	}
	s.items = append(s.items, 0)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = x
}

func (s *intSet) remove(x int) {
	i, ok := s.find(x)
	if !ok {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// ForestOrientation tracks an orientation of a graph's edges: each edge is
// assigned a "from" and a "to" endpoint, and the structure maintains each
// vertex's outdegree alongside both directions' adjacency for O(log d)
// lookups, where d is the vertex's degree.
type ForestOrientation struct {
	v             int
	outdegs       []int
	forward       []intSet // forward[u] holds v for every oriented edge (u,v)
	revDirections []intSet // revDirections[v] holds u for every oriented edge (u,v)
}

// NewForestOrientation returns an orientation with no edges over V vertices.
func NewForestOrientation(v int) *ForestOrientation {
	return &ForestOrientation{
		v:             v,
		outdegs:       make([]int, v),
		forward:       make([]intSet, v),
		revDirections: make([]intSet, v),
	}
}

func (o *ForestOrientation) checkVertex(v int) {
	if v < 0 || v >= o.v {
		panic("graph: vertex out of range")
	}
}

// GetV returns the vertex count.
func (o *ForestOrientation) GetV() int { return o.v }

// GetOutdegree returns v's current outdegree.
func (o *ForestOrientation) GetOutdegree(v int) int {
	o.checkVertex(v)
	return o.outdegs[v]
}

// GetMaxOutdegree returns the maximum outdegree over all vertices.
func (o *ForestOrientation) GetMaxOutdegree() int {
	max := 0
	for _, d := range o.outdegs {
		if d > max {
			max = d
		}
	}
	return max
}

// IsOriented reports whether the edge {va, vb} is currently oriented from
// va to vb.
func (o *ForestOrientation) IsOriented(va, vb int) bool {
	o.checkVertex(va)
	o.checkVertex(vb)
	return o.forward[va].contains(vb)
}

// Contains reports whether {va, vb} is oriented in either direction.
func (o *ForestOrientation) Contains(va, vb int) bool {
	return o.IsOriented(va, vb) || o.IsOriented(vb, va)
}

// OrientEdge orients a new edge from "from" to "to".
//
// OrientEdge panics if the edge is already oriented in either direction.
func (o *ForestOrientation) OrientEdge(from, to int) {
	o.checkVertex(from)
	o.checkVertex(to)
	if o.Contains(from, to) {
		panic("graph: edge already oriented")
	}
	o.outdegs[from]++
	o.forward[from].insert(to)
	o.revDirections[to].insert(from)
}

// RemoveEdge removes the oriented edge from -> to.
//
// RemoveEdge panics if the edge is not currently oriented from -> to.
func (o *ForestOrientation) RemoveEdge(from, to int) {
	o.checkVertex(from)
	o.checkVertex(to)
	if !o.IsOriented(from, to) {
		panic("graph: edge not oriented from -> to")
	}
	o.outdegs[from]--
	o.forward[from].remove(to)
	o.revDirections[to].remove(from)
}

// FlipEdge reverses the oriented edge from -> to into to -> from.
func (o *ForestOrientation) FlipEdge(from, to int) {
	o.RemoveEdge(from, to)
	o.OrientEdge(to, from)
}

// GetInNeighbours returns every u with an edge oriented u -> v, ascending.
func (o *ForestOrientation) GetInNeighbours(v int) []int {
	o.checkVertex(v)
	return append([]int(nil), o.revDirections[v].items...)
}

// GetOutNeighbours returns every w with an edge oriented v -> w, ascending.
func (o *ForestOrientation) GetOutNeighbours(v int) []int {
	o.checkVertex(v)
	return append([]int(nil), o.forward[v].items...)
}

// GetAllEdges returns every oriented edge (from, to), ordered first by from
// then by to, matching the std::set<pair<int,int>> iteration order of the
// reference implementation.
func (o *ForestOrientation) GetAllEdges() [][2]int {
	var result [][2]int
	for from := 0; from < o.v; from++ {
		for _, to := range o.forward[from].items {
			result = append(result, [2]int{from, to})
		}
	}
	return result
}

// PrintDescription renders the orientation as a directed Graphviz DOT graph.
func (o *ForestOrientation) PrintDescription() string {
	var b strings.Builder
	b.WriteString("digraph {\n  node [margin=0 shape=circle style=filled]\n")
	for _, e := range o.GetAllEdges() {
		fmt.Fprintf(&b, "  %d -> %d\n", e[0], e[1])
	}
	b.WriteString("}\n")
	return b.String()
}
