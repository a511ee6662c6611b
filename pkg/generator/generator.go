// Package generator synthesises random instances of the dynamic graph
// orientation problem: a sequence of edge insertions and deletions against
// a BoundedArbGraph, interleaved with purge phases (runs of forced
// deletions) so edge density doesn't grow unbounded over a long run.
package generator

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/matzehuels/stacktower/pkg/graph"
)

// OperationType distinguishes an edge insertion from a deletion in a
// generated instance.
type OperationType int

const (
	Insert OperationType = iota
	Delete
)

func (op OperationType) String() string {
	if op == Delete {
		return "DELETE"
	}
	return "INSERT"
}

// Command is one step of a generated instance: insert or delete the edge
// {A, B}.
type Command struct {
	Operation OperationType
	A, B      int
}

func (c Command) String() string {
	return fmt.Sprintf("%s %d -- %d\n", c.Operation, c.A, c.B)
}

// ProblemInstance is a complete generated orientation-problem input.
type ProblemInstance struct {
	V, Alpha int
	Sequence []Command
}

// PrintSequence writes the header line followed by one line per command.
func (p ProblemInstance) PrintSequence(w io.Writer) {
	fmt.Fprintf(w, "|V| = %d, alpha = %d\n", p.V, p.Alpha)
	for _, c := range p.Sequence {
		io.WriteString(w, c.String())
	}
}

// strategy supplies the behaviour a Generator needs but can't implement
// generically: how to pick an edge to insert or delete, and how the
// insert/purge probabilities respond to the graph's current state. This is
// the Go stand-in for the reference implementation's abstract base class,
// composed into Generator rather than inherited from it.
type strategy interface {
	insertRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int)
	deleteRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int)
	insertProbability(g *graph.BoundedArbGraph) float64
	purgeProbability(g *graph.BoundedArbGraph) float64
}

// Generator drives a strategy through a sequence of insert/delete steps
// against a freshly built BoundedArbGraph.
type Generator struct {
	v, alpha int
	rng      *rand.Rand
	s        strategy
}

// SetSeed reseeds the generator's PRNG, for reproducible instances.
func (g *Generator) SetSeed(seed1, seed2 uint64) {
	g.rng = rand.New(rand.NewPCG(seed1, seed2))
}

// GenerateInstance runs sequenceLen insert/delete steps starting from an
// empty graph on V vertices decomposed into alpha forests.
func (g *Generator) GenerateInstance(sequenceLen int) ProblemInstance {
	instance := ProblemInstance{V: g.v, Alpha: g.alpha, Sequence: make([]Command, 0, sequenceLen)}
	bg := graph.NewBoundedArbGraph(g.v, g.alpha)
	purgeCountdown := 0

	for t := 0; t < sequenceLen; t++ {
		op := Insert
		if g.rng.Float64() >= g.s.insertProbability(bg) {
			op = Delete
		}

		switch {
		case bg.GetEdgeCount() == 0:
			op = Insert
		case bg.GetEdgeCount() == (g.v-1)*g.alpha:
			op = Delete
		case purgeCountdown > 0:
			op = Delete
		}

		var a, b int
		if op == Insert {
			a, b = g.s.insertRandomEdge(bg, g.rng)
		} else {
			a, b = g.s.deleteRandomEdge(bg, g.rng)
		}
		instance.Sequence = append(instance.Sequence, Command{op, a, b})

		activatePurge := purgeCountdown == 0 && g.rng.Float64() < g.s.purgeProbability(bg)
		switch {
		case activatePurge:
			purgeCountdown = g.rng.IntN(bg.GetEdgeCount()/2 + 1)
		case purgeCountdown > 0:
			purgeCountdown--
		}
	}
	return instance
}

func swapIfNeeded(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// densityInsertProbability is the (edgeDensity, purgeProb) strategies'
// shared insert-probability curve: it rises toward 1 as density falls
// toward 0, falls toward 0 as density approaches full, and is continuous
// at the target density itself.
func densityInsertProbability(edgeCount int, v, alpha int, edgeDensity float64) float64 {
	density := float64(edgeCount) / (float64(alpha) * float64(v-1))
	if density <= edgeDensity {
		return 1 - density/(2*edgeDensity)
	}
	return (1 - density) / (2 - 2*edgeDensity)
}

// deleteRandomEdgeUniformly picks a uniformly random existing edge to
// delete, shared by both strategies (neither weights deletions).
func deleteRandomEdgeUniformly(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int) {
	idx := rng.IntN(g.GetEdgeCount())
	a, b := g.GetEdge(idx)
	g.DeleteEdge(a, b)
	return a, b
}
