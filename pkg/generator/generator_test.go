package generator

import (
	"strings"
	"testing"

	"github.com/matzehuels/stacktower/pkg/graph"
)

// TestUniformGeneratorRespectsArboricityBound checks property 5: replaying
// a generated instance's commands against a fresh graph never exceeds the
// (V-1)*alpha total edge-capacity bound and never desyncs from the
// generator's own bookkeeping.
func TestUniformGeneratorRespectsArboricityBound(t *testing.T) {
	const v, alpha = 8, 3
	g := NewUniformDistrGenerator(v, alpha, 0.5, 0.05, 1, 2)
	instance := g.GenerateInstance(500)

	replay := graph.NewBoundedArbGraph(v, alpha)
	for _, c := range instance.Sequence {
		switch c.Operation {
		case Insert:
			inserted := false
			for fi := 0; fi < alpha; fi++ {
				if replay.InsertEdge(fi, c.A, c.B) {
					inserted = true
					break
				}
			}
			if !inserted {
				t.Fatalf("could not replay insert %d--%d", c.A, c.B)
			}
		case Delete:
			replay.DeleteEdge(c.A, c.B)
		}
		if got, max := replay.GetEdgeCount(), (v-1)*alpha; got > max {
			t.Fatalf("edge count %d exceeds bound %d", got, max)
		}
	}
}

func TestGeomGeneratorProducesValidCommands(t *testing.T) {
	const v, alpha = 10, 2
	g := NewGeomDistrGenerator(v, alpha, 0.4, 0.1, 0.3, 3, 4)
	instance := g.GenerateInstance(200)
	if got, want := instance.V, v; got != want {
		t.Errorf("V = %d, want %d", got, want)
	}
	for _, c := range instance.Sequence {
		if c.A < 0 || c.A >= v || c.B < 0 || c.B >= v {
			t.Fatalf("command endpoint out of range: %+v", c)
		}
	}
}

func TestPrintSequenceFormat(t *testing.T) {
	instance := ProblemInstance{
		V: 3, Alpha: 2,
		Sequence: []Command{{Insert, 0, 1}, {Delete, 0, 1}},
	}
	var b strings.Builder
	instance.PrintSequence(&b)
	want := "|V| = 3, alpha = 2\nINSERT 0 -- 1\nDELETE 0 -- 1\n"
	if got := b.String(); got != want {
		t.Errorf("PrintSequence() = %q, want %q", got, want)
	}
}
