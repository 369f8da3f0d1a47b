package search

import (
	"errors"

	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/verify"
)

// RegimeFor returns the regime Find selects for k on n agents.
func RegimeFor(n, k int, ratio float64) Regime {
	switch {
	case k == 1:
		return RegimeTrivial
	case float64(k) >= ratio*float64(n):
		return RegimeLargeK
	default:
		return RegimeBacktrack
	}
}

// Find returns a k-stable matching of inst. The matching is maximal.
//
// Errors: market.ErrNilInstance (nil inst), market.ErrKOutOfRange,
// ErrNotFound, ErrCanceled, ErrBudgetExceeded.
//
// Complexity: exponential in the worst case; each leaf costs one
// verification.
func Find(inst *market.Instance, k int, opts ...Option) (Result, error) {
	o := DefaultOptions().Apply(opts...)
	if inst == nil {
		return Result{}, market.ErrNilInstance
	}
	if err := market.CheckK(inst, k); err != nil {
		return Result{}, err
	}

	res := Result{Regime: RegimeFor(inst.N(), k, o.LargeKRatio)}
	if res.Regime == RegimeTrivial {
		res.Matching = Greedy(inst)
		o.Logger.Debug("search: trivial k", "n", inst.N(), "found", res.Matching != nil)
		if res.Matching == nil {
			return res, ErrNotFound
		}

		return res, nil
	}

	for _, c := range Candidates(inst) {
		res.Candidates++
		if verify.IsKStable(c, inst, k, o.Verify...) {
			res.Matching = c
			o.Logger.Debug("search: candidate accepted",
				"regime", res.Regime.String(), "k", k, "candidate", res.Candidates)

			return res, nil
		}
	}
	if res.Regime == RegimeLargeK && o.TrustLargeK {
		o.Logger.Debug("search: large k, candidates rejected", "k", k, "candidates", res.Candidates)

		return res, ErrNotFound
	}

	e := newEngine(inst, k, modeFind, o)
	e.run()
	res.Nodes, res.Pruned = e.nodes, e.pruned
	o.Logger.Debug("search: backtracking done",
		"regime", res.Regime.String(), "k", k, "nodes", e.nodes, "pruned", e.pruned, "found", e.found != nil)
	if e.err != nil {
		return res, e.err
	}
	if e.found == nil {
		return res, ErrNotFound
	}
	res.Matching = e.found

	return res, nil
}

// Exists reports whether inst admits a k-stable matching. ErrNotFound is
// reported as (false, nil); every other error leaves the answer unknown.
func Exists(inst *market.Instance, k int, opts ...Option) (bool, error) {
	_, err := Find(inst, k, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Count returns the number of valid matchings of inst (maximal or not,
// including the empty one where the model permits it) that are k-stable.
// Marriage matchings are complete. For k == 1 that is every
// valid matching.
//
// Errors: market.ErrNilInstance, market.ErrKOutOfRange, ErrCanceled,
// ErrBudgetExceeded.
func Count(inst *market.Instance, k int, opts ...Option) (int, error) {
	o := DefaultOptions().Apply(opts...)
	if inst == nil {
		return 0, market.ErrNilInstance
	}
	if err := market.CheckK(inst, k); err != nil {
		return 0, err
	}

	e := newEngine(inst, k, modeCount, o)
	e.run()
	o.Logger.Debug("search: count done", "k", k, "count", e.count, "nodes", e.nodes, "pruned", e.pruned)
	if e.err != nil {
		return 0, e.err
	}

	return e.count, nil
}
