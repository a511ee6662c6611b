package generator

import (
	"math/rand/v2"

	"github.com/matzehuels/stacktower/pkg/graph"
)

// uniformStrategy samples both new-edge endpoints uniformly at random, so
// every vertex is equally likely to gain degree. edgeDensity is the target
// fraction of the graph's (V-1)*alpha edge capacity to hover around;
// purgeProb is the constant per-step probability of entering a purge phase.
type uniformStrategy struct {
	v, alpha             int
	edgeDensity, purgeProb float64
}

// NewUniformDistrGenerator returns a Generator whose edge endpoints are
// drawn from a uniform distribution over [0, V).
func NewUniformDistrGenerator(v, alpha int, edgeDensity, purgeProb float64, seed1, seed2 uint64) *Generator {
	return &Generator{
		v: v, alpha: alpha,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
		s:   uniformStrategy{v: v, alpha: alpha, edgeDensity: edgeDensity, purgeProb: purgeProb},
	}
}

func (s uniformStrategy) insertRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int) {
	for {
		forestIndex := rng.IntN(s.alpha)
		a, b := rng.IntN(s.v), rng.IntN(s.v)
		if g.InsertEdge(forestIndex, a, b) {
			return swapIfNeeded(a, b)
		}
	}
}

func (s uniformStrategy) deleteRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int) {
	return deleteRandomEdgeUniformly(g, rng)
}

func (s uniformStrategy) insertProbability(g *graph.BoundedArbGraph) float64 {
	return densityInsertProbability(g.GetEdgeCount(), s.v, s.alpha, s.edgeDensity)
}

func (s uniformStrategy) purgeProbability(g *graph.BoundedArbGraph) float64 {
	return s.purgeProb
}
