package verify

import (
	"github.com/katalvlaran/kstable/improve"
	"github.com/katalvlaran/kstable/market"
)

// Report is the outcome of Check.
type Report struct {
	// Stable is MaxCoalition < K (always true for K == 1).
	Stable bool

	// K is the threshold checked.
	K int

	// MaxCoalition is the largest number of agents some single feasible
	// alternative matching improves strictly and simultaneously.
	MaxCoalition int

	// Coalition lists, ascending, the agents improved by Alternative.
	Coalition []int

	// Alternative is a partial matching (market.ValidatePartial) improving
	// every Coalition member; nil when MaxCoalition == 0. Marriage
	// alternatives are completed to full matchings when the remaining
	// agents allow it.
	Alternative *market.Matching
}

// IsKStable reports whether m is k-stable for inst. It fails closed:
// invalid input, k outside [1, n] or a backend failure yields false.
//
// Complexity: Combinatorial O(E·√V) for house models, O(V³) for bilateral
// ones (usually cut short by the cardinality bracket).
func IsKStable(m *market.Matching, inst *market.Instance, k int, opts ...Option) bool {
	o := DefaultOptions().Apply(opts...)
	if inst == nil || market.CheckK(inst, k) != nil || market.Validate(m, inst) != nil {
		o.Logger.Debug("verify: rejected input", "k", k)

		return false
	}
	if k == 1 {
		return true
	}

	g := improve.Build(m, inst)
	if len(g.Improvers()) < k {
		return true
	}

	var (
		stable bool
		err    error
	)
	switch o.Backend {
	case PseudoBoolean:
		var ok bool
		ok, _, err = pbReaches(g, k, o.MaxPBVariables)
		stable = !ok
	default:
		stable = decideCombinatorial(g, k, bipartiteFor(o.Backend))
	}
	if err != nil {
		o.Logger.Warn("verify: backend failed", "backend", o.Backend.String(), "err", err)

		return false
	}
	o.Logger.Debug("verify: decided", "backend", o.Backend.String(), "k", k, "stable", stable)

	return stable
}

// Check verifies m against k and returns a full Report with a witness
// coalition when m is not stable (and the largest coalition in any case).
//
// Errors: market.ErrKOutOfRange, market.ErrInfeasibleMatching (wrapped),
// market.ErrAllocationFailure.
func Check(m *market.Matching, inst *market.Instance, k int, opts ...Option) (Report, error) {
	if inst == nil {
		return Report{}, market.Validate(m, inst)
	}
	if err := market.CheckK(inst, k); err != nil {
		return Report{}, err
	}
	w, err := MaxCoalition(m, inst, opts...)
	if err != nil {
		return Report{}, err
	}
	w.K = k
	w.Stable = k == 1 || w.MaxCoalition < k

	return w, nil
}

// MaxCoalition computes the largest blocking coalition of m with a witness.
// The returned Report has K == 0 and Stable unset.
//
// Errors: market.ErrInfeasibleMatching (wrapped), market.ErrAllocationFailure.
func MaxCoalition(m *market.Matching, inst *market.Instance, opts ...Option) (Report, error) {
	o := DefaultOptions().Apply(opts...)
	if err := market.Validate(m, inst); err != nil {
		return Report{}, err
	}

	g := improve.Build(m, inst)
	var (
		chosen []improve.Edge
		err    error
	)
	switch o.Backend {
	case PseudoBoolean:
		chosen, err = pbMaximum(g, o.MaxPBVariables)
	default:
		chosen = maximumCombinatorial(g, bipartiteFor(o.Backend))
	}
	if err != nil {
		return Report{}, err
	}

	r := witness(g, inst, chosen, bipartiteFor(o.Backend))
	o.Logger.Debug("verify: max coalition",
		"backend", o.Backend.String(), "model", inst.Model().String(),
		"edges", len(g.Edges), "coalition", r.MaxCoalition)

	return r, nil
}

// witness turns the chosen improvement edges into a Report.
func witness(g *improve.Graph, inst *market.Instance, chosen []improve.Edge, bip bipartiteFunc) Report {
	var r Report
	if len(chosen) == 0 {
		return r
	}
	alt := market.NewMatching(inst)
	seen := make([]bool, g.N)
	for _, e := range chosen {
		alt.Assign(e.U, e.V)
		for _, a := range g.Improving(e) {
			seen[a] = true
		}
	}
	for a, ok := range seen {
		if ok {
			r.Coalition = append(r.Coalition, a)
		}
	}
	r.MaxCoalition = len(r.Coalition)
	if !inst.Model().AllowsUnmatched() {
		complete(alt, inst, bip)
	}
	r.Alternative = alt

	return r
}

// complete pairs the single men and women of a Marriage alternative when
// they admit a perfect matching among themselves; otherwise alt stays
// partial. Coalition members keep their partners either way.
func complete(alt *market.Matching, inst *market.Instance, bip bipartiteFunc) {
	var men, women []int
	for i := 0; i < inst.N(); i++ {
		switch {
		case alt.IsMatched(i):
		case inst.IsMan(i):
			men = append(men, i)
		default:
			women = append(women, i)
		}
	}
	if len(men) != len(women) || len(men) == 0 {
		return
	}

	col := make(map[int]int, len(women))
	for j, w := range women {
		col[w] = j
	}
	adj := make([][]int, len(men))
	for u, man := range men {
		l := inst.Prefs(man)
		for r := 0; r < l.Len(); r++ {
			if j, ok := col[l.At(r)]; ok && inst.Acceptable(man, l.At(r)) {
				adj[u] = append(adj[u], j)
			}
		}
	}
	res, _ := bip(len(men), len(women), adj)
	if res.Size != len(men) {
		return
	}
	for u, j := range res.Left {
		alt.Assign(men[u], women[j])
	}
}
