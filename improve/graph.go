package improve

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/kstable/market"
)

// Edge is one improvement option.
//
// House models: U is an agent, V a good, Weight 1.
// Bilateral models: U < V are agents, Weight = number of improving endpoints.
type Edge struct {
	U, V      int
	Weight    int
	UImproves bool
	VImproves bool
}

// Graph is an improvement graph over a fixed matching.
type Graph struct {
	Model market.Model

	// N is the number of agents.
	N int

	// Targets is the number of goods (house models) or N (bilateral models).
	Targets int

	// Edges in deterministic order: by U, then by U's preference order.
	Edges []Edge
}

// ToGoods reports whether edges run from agents (U) to goods (V), as in house
// models. Otherwise U and V are both agents, Marriage included.
func (g *Graph) ToGoods() bool { return g.Model.HouseLike() }

// Adjacency returns, for house models, the goods each agent could improve to,
// best first. It returns nil for bilateral models.
func (g *Graph) Adjacency() [][]int {
	if !g.ToGoods() {
		return nil
	}
	adj := make([][]int, g.N)
	for _, e := range g.Edges {
		adj[e.U] = append(adj[e.U], e.V)
	}

	return adj
}

// Improvers returns the sorted agents that have at least one improving edge.
// Its length bounds every coalition from above.
func (g *Graph) Improvers() []int {
	seen := make([]bool, g.N)
	for _, e := range g.Edges {
		if e.UImproves {
			seen[e.U] = true
		}
		if e.VImproves && !g.ToGoods() {
			seen[e.V] = true
		}
	}
	var out []int
	for i, ok := range seen {
		if ok {
			out = append(out, i)
		}
	}

	return out
}

// Improving returns the endpoints of e that strictly improve, in ascending order.
func (g *Graph) Improving(e Edge) []int {
	var out []int
	if e.UImproves {
		out = append(out, e.U)
	}
	if e.VImproves && !g.ToGoods() {
		out = append(out, e.V)
	}
	slices.Sort(out)

	return out
}
