package verify

import (
	"fmt"

	"github.com/crillab/gophersat/solver"

	"github.com/katalvlaran/kstable/improve"
	"github.com/katalvlaran/kstable/market"
)

// pbReaches asks gophersat whether some matching of g improves at least k
// agents. Variable e+1 selects g.Edges[e]; every vertex (agent, and good in
// house models) takes at most one selected edge; the weighted sum of
// selected edges must reach k.
//
// It returns the satisfying edge set when one exists.
func pbReaches(g *improve.Graph, k, maxVars int) (bool, []improve.Edge, error) {
	if len(g.Edges) > maxVars {
		return false, nil, fmt.Errorf("%w: %d PB variables exceed budget %d",
			market.ErrAllocationFailure, len(g.Edges), maxVars)
	}

	agentLits := make([][]int, g.N)
	var goodLits [][]int
	if g.ToGoods() {
		goodLits = make([][]int, g.Targets)
	}
	lits := make([]int, len(g.Edges))
	weights := make([]int, len(g.Edges))
	for e, edge := range g.Edges {
		v := e + 1
		lits[e] = v
		weights[e] = edge.Weight
		agentLits[edge.U] = append(agentLits[edge.U], v)
		if g.ToGoods() {
			goodLits[edge.V] = append(goodLits[edge.V], v)
		} else {
			agentLits[edge.V] = append(agentLits[edge.V], v)
		}
	}

	constrs := make([]solver.PBConstr, 0, g.N+len(goodLits)+1)
	for _, group := range [][][]int{agentLits, goodLits} {
		for _, ls := range group {
			if len(ls) > 1 {
				constrs = append(constrs, solver.AtMost(ls, 1))
			}
		}
	}
	constrs = append(constrs, solver.GtEq(lits, weights, k))

	s := solver.New(solver.ParsePBConstrs(constrs))
	if s.Solve() != solver.Sat {
		return false, nil, nil
	}

	model := s.Model()
	var chosen []improve.Edge
	for e := range g.Edges {
		if e < len(model) && model[e] {
			chosen = append(chosen, g.Edges[e])
		}
	}

	return true, chosen, nil
}

// pbMaximum finds a largest coalition by binary search over the threshold,
// bounded above by the number of agents with any improving edge.
func pbMaximum(g *improve.Graph, maxVars int) ([]improve.Edge, error) {
	var best []improve.Edge
	lo, hi := 1, len(g.Improvers())
	for lo <= hi {
		mid := (lo + hi) / 2
		ok, chosen, err := pbReaches(g, mid, maxVars)
		if err != nil {
			return nil, err
		}
		if ok {
			best = chosen
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return best, nil
}
