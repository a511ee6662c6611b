package generator

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/stacktower/pkg/graph"
)

// geomStrategy samples one endpoint uniformly and the other from a
// geometric distribution, so in expectation a handful of low-numbered
// vertices accumulate disproportionately high degree.
type geomStrategy struct {
	v, alpha               int
	edgeDensity, purgeProb float64
	succProb               float64 // geometric distribution success probability
}

// NewGeomDistrGenerator returns a Generator whose second edge endpoint is
// drawn from a geometric distribution with the given success probability,
// clamped to V-1 so the distribution's tail collapses onto the last vertex.
func NewGeomDistrGenerator(v, alpha int, edgeDensity, purgeProb, succProb float64, seed1, seed2 uint64) *Generator {
	return &Generator{
		v: v, alpha: alpha,
		rng: rand.New(rand.NewPCG(seed1, seed2)),
		s: geomStrategy{
			v: v, alpha: alpha,
			edgeDensity: edgeDensity, purgeProb: purgeProb, succProb: succProb,
		},
	}
}

// geometricSample draws a sample from the geometric distribution over
// {0, 1, 2, ...} (number of failures before the first success) with success
// probability p, via inverse transform sampling.
func geometricSample(rng *rand.Rand, p float64) int {
	u := rng.Float64()
	return int(math.Log(1-u) / math.Log(1-p))
}

func (s geomStrategy) insertRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int) {
	for {
		forestIndex := rng.IntN(s.alpha)
		a := rng.IntN(s.v)
		b := geometricSample(rng, s.succProb)
		if b > s.v-1 {
			b = s.v - 1
		}
		if g.InsertEdge(forestIndex, a, b) {
			return swapIfNeeded(a, b)
		}
	}
}

func (s geomStrategy) deleteRandomEdge(g *graph.BoundedArbGraph, rng *rand.Rand) (int, int) {
	return deleteRandomEdgeUniformly(g, rng)
}

func (s geomStrategy) insertProbability(g *graph.BoundedArbGraph) float64 {
	return densityInsertProbability(g.GetEdgeCount(), s.v, s.alpha, s.edgeDensity)
}

func (s geomStrategy) purgeProbability(g *graph.BoundedArbGraph) float64 {
	return s.purgeProb
}
