package verify

import (
	"github.com/katalvlaran/kstable/improve"
	"github.com/katalvlaran/kstable/maxmatch"
)

// bipartiteFunc computes a maximum bipartite matching; HopcroftKarp and
// Dinic share the signature.
type bipartiteFunc func(left, right int, adj [][]int) (maxmatch.BipartiteResult, error)

// bipartiteFor returns the bipartite algorithm of backend b.
func bipartiteFor(b Backend) bipartiteFunc {
	if b == Flow {
		return maxmatch.Dinic
	}

	return maxmatch.HopcroftKarp
}

// decideCombinatorial reports whether the largest coalition of g is below k.
// Bilateral graphs try the cardinality bracket c <= w <= 2c first.
func decideCombinatorial(g *improve.Graph, k int, bip bipartiteFunc) bool {
	if g.ToGoods() {
		res, _ := bip(g.N, g.Targets, g.Adjacency())

		return res.Size < k
	}

	edges := weightedEdges(g)
	card, _ := maxmatch.Blossom(g.N, edges)
	switch {
	case card.Size >= k:
		return false
	case 2*card.Size < k:
		return true
	}
	res, _ := maxmatch.MaxWeight(g.N, edges)

	return res.Weight < int64(k)
}

// maximumCombinatorial returns the edges of a largest coalition's alternative.
func maximumCombinatorial(g *improve.Graph, bip bipartiteFunc) []improve.Edge {
	if g.ToGoods() {
		res, _ := bip(g.N, g.Targets, g.Adjacency())
		var chosen []improve.Edge
		for u, v := range res.Left {
			if v != maxmatch.Free {
				chosen = append(chosen, improve.Edge{U: u, V: v, Weight: 1, UImproves: true})
			}
		}

		return chosen
	}

	res, _ := maxmatch.MaxWeight(g.N, weightedEdges(g))
	best := make(map[[2]int]improve.Edge, len(g.Edges))
	for _, e := range g.Edges {
		best[[2]int{e.U, e.V}] = e
	}
	var chosen []improve.Edge
	for u, v := range res.Mate {
		if v != maxmatch.Free && u < v {
			chosen = append(chosen, best[[2]int{u, v}])
		}
	}

	return chosen
}

// weightedEdges converts a bilateral improvement graph; Build emits U < V,
// never self-loops, so the maxmatch input checks cannot fail.
func weightedEdges(g *improve.Graph) []maxmatch.Edge {
	edges := make([]maxmatch.Edge, len(g.Edges))
	for i, e := range g.Edges {
		edges[i] = maxmatch.Edge{U: e.U, V: e.V, W: int64(e.Weight)}
	}

	return edges
}

// Reaches reports whether some matching of the improvement graph g leaves
// at least k agents strictly better off. The search engine feeds it partial
// graphs (improve.BuildPartial) to obtain sound lower bounds.
func Reaches(g *improve.Graph, k int) bool {
	if k <= 0 {
		return true
	}
	if len(g.Improvers()) < k {
		return false
	}

	return !decideCombinatorial(g, k, maxmatch.HopcroftKarp)
}
