package linkcut

import (
	"math/rand/v2"
	"testing"
)

func TestScenarioS6(t *testing.T) {
	f := New(3)
	f.Link(1, 2)
	f.Link(2, 3)
	if !f.Connected(1, 3) {
		t.Error("Connected(1,3) = false, want true")
	}
	f.Cut(2, 3)
	if f.Connected(1, 3) {
		t.Error("Connected(1,3) = true after cut, want false")
	}
	if !f.Connected(1, 2) {
		t.Error("Connected(1,2) = false after cut, want true")
	}
}

func TestSelfConnected(t *testing.T) {
	f := New(4)
	if !f.Connected(2, 2) {
		t.Error("a vertex should be connected to itself")
	}
	if f.Connected(1, 2) {
		t.Error("isolated vertices should not be connected")
	}
}

// unionFind is a reference connectivity oracle used to validate property 4.
type unionFind struct {
	parent []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]int, n+1)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(x, y int) {
	uf.parent[uf.find(x)] = uf.find(y)
}

func (uf *unionFind) connected(x, y int) bool {
	return uf.find(x) == uf.find(y)
}

// TestAgainstUnionFindReference replays random link/cut/connected sequences
// (restricted to inputs that never attempt to create a cycle) against a
// union-find reference, per property 4.
func TestAgainstUnionFindReference(t *testing.T) {
	const v = 12
	rng := rand.New(rand.NewPCG(5, 6))
	f := New(v)
	uf := newUnionFind(v)

	var edges []edge

	for i := 0; i < 2000; i++ {
		switch {
		case rng.IntN(3) == 0 && len(edges) > 0:
			idx := rng.IntN(len(edges))
			e := edges[idx]
			f.Cut(e.u, e.v)
			edges = append(edges[:idx], edges[idx+1:]...)
			uf = rebuildUnionFind(v, edges)
		case rng.IntN(2) == 0:
			u, vtx := 1+rng.IntN(v), 1+rng.IntN(v)
			if u == vtx || uf.connected(u, vtx) {
				continue // would create a cycle or a self-loop; skip
			}
			f.Link(u, vtx)
			uf.union(u, vtx)
			edges = append(edges, edge{u, vtx})
		default:
			u, vtx := 1+rng.IntN(v), 1+rng.IntN(v)
			if got, want := f.Connected(u, vtx), uf.connected(u, vtx); got != want {
				t.Fatalf("step %d: Connected(%d,%d) = %v, want %v", i, u, vtx, got, want)
			}
		}
	}
}

type edge struct{ u, v int }

func rebuildUnionFind(v int, edges []edge) *unionFind {
	uf := newUnionFind(v)
	for _, e := range edges {
		uf.union(e.u, e.v)
	}
	return uf
}
