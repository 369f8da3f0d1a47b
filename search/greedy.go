package search

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/maxmatch"
)

// Greedy returns a maximal valid matching: agents in index order take their
// best target still available. A Marriage matching must be complete; when
// the greedy pass leaves someone single, Greedy returns a complete matching
// from maxmatch.HopcroftKarp instead, or nil when none exists.
//
// Complexity: O(sum of preference list lengths), plus O(E·√V) for the
// Marriage fallback.
func Greedy(inst *market.Instance) *market.Matching {
	g := newGreedy(inst)
	for i := 0; i < inst.N(); i++ {
		g.offer(i, nil)
	}
	if market.IsValid(g.m, inst) {
		return g.m
	}

	return perfectMarriage(inst)
}

// perfectMarriage returns a complete Marriage matching of inst, or nil.
func perfectMarriage(inst *market.Instance) *market.Matching {
	men := inst.NumMen()
	if 2*men != inst.N() {
		return nil
	}
	adj := make([][]int, men)
	for i := 0; i < men; i++ {
		l := inst.Prefs(i)
		for r := 0; r < l.Len(); r++ {
			if t := l.At(r); inst.Acceptable(i, t) {
				adj[i] = append(adj[i], t-men)
			}
		}
	}
	res, err := maxmatch.HopcroftKarp(men, inst.N()-men, adj)
	if err != nil || res.Size != men {
		return nil
	}
	m := market.NewMatching(inst)
	for i, w := range res.Left {
		m.Assign(i, men+w)
	}

	return m
}

// mutualThreshold admits t for agent i when i sits in the first num/den of
// t's list. House models have no reverse ranking and admit everything.
type mutualThreshold struct{ num, den int }

// thresholds of the candidate strategies, strictest first; nil means none.
var thresholds = []*mutualThreshold{{1, 3}, {1, 2}, nil}

// Candidates returns the distinct greedy candidates verified before
// backtracking. Each strategy matches agents pickiest first (shortest list,
// then lowest ID) with their best available target, admitting only pairs
// within a mutual rank threshold, then completes the matching without the
// threshold so that every candidate is maximal. Candidates that are not
// valid (an incomplete Marriage) are dropped.
//
// Complexity: O(len(thresholds) · sum of list lengths) plus the sort.
func Candidates(inst *market.Instance) []*market.Matching {
	order := make([]int, inst.N())
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) bool {
		return inst.Prefs(a).Len() < inst.Prefs(b).Len()
	})

	seen := make(map[uint64]struct{}, len(thresholds))
	var out []*market.Matching
	for _, th := range thresholds {
		g := newGreedy(inst)
		for _, i := range order {
			g.offer(i, th)
		}
		if th != nil {
			for _, i := range order {
				g.offer(i, nil)
			}
		}
		if !market.IsValid(g.m, inst) {
			continue
		}
		fp := g.m.Fingerprint()
		if _, dup := seen[fp]; dup {
			continue
		}
		seen[fp] = struct{}{}
		out = append(out, g.m)
	}

	return out
}

type greedy struct {
	inst *market.Instance
	m    *market.Matching
	held []bool
}

func newGreedy(inst *market.Instance) *greedy {
	g := &greedy{inst: inst, m: market.NewMatching(inst)}
	if inst.Model().HouseLike() {
		g.held = make([]bool, inst.Targets())
	}

	return g
}

// offer matches unmatched agent i with its best admissible available target.
func (g *greedy) offer(i int, th *mutualThreshold) {
	if g.m.IsMatched(i) {
		return
	}
	l := g.inst.Prefs(i)
	for r := 0; r < l.Len(); r++ {
		t := l.At(r)
		if !g.available(i, t) || !g.admits(i, t, th) {
			continue
		}
		g.m.Assign(i, t)
		if g.held != nil {
			g.held[t] = true
		}

		return
	}
}

func (g *greedy) available(i, t int) bool {
	if g.held != nil {
		return !g.held[t]
	}

	return !g.m.IsMatched(t) && g.inst.Acceptable(i, t)
}

func (g *greedy) admits(i, t int, th *mutualThreshold) bool {
	if th == nil || g.held != nil {
		return true
	}
	back := g.inst.Prefs(t)

	return back.Rank(i)*th.den < back.Len()*th.num
}
