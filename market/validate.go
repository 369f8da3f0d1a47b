package market

import "fmt"

// Validate checks that m is a feasible matching of inst and returns a
// wrapped ErrInfeasibleMatching describing the first violation found.
// It runs ValidatePartial and then, for models that do not permit
// unmatched agents (Marriage), requires every agent to be matched.
//
// Complexity: O(n + goods).
func Validate(m *Matching, inst *Instance) error {
	if err := ValidatePartial(m, inst); err != nil {
		return err
	}
	if !inst.model.AllowsUnmatched() {
		for i, t := range m.pairs {
			if t == Unmatched {
				return fmt.Errorf("%w: agent %d", ErrUnmatchedAgent, i)
			}
		}
	}

	return nil
}

// ValidatePartial checks every assigned pair of m and ignores unmatched
// agents in every model. Coalition alternatives (verify.Report) are partial
// matchings in this sense.
//
// Checks, in order, for each agent i with target t = m.Partner(i):
//  1. bounds:      t is Unmatched or in [0, inst.Targets()).
//  2. self:        t != i (bilateral models).
//  3. symmetry:    m.Partner(t) == i (bilateral models).
//  4. sides:       i and t on different sides (Marriage).
//  5. capacity:    no good held twice (house models).
//  6. acceptable:  t acceptable to i, and i to t when bilateral.
//
// Complexity: O(n + goods).
func ValidatePartial(m *Matching, inst *Instance) error {
	if m == nil || inst == nil {
		return fmt.Errorf("%w: nil matching or instance", ErrInvalidArgument)
	}
	if m.model != inst.model || len(m.pairs) != inst.N() {
		return fmt.Errorf("%w: matching %s/%d, instance %s/%d",
			ErrModelMismatch, m.model, len(m.pairs), inst.model, inst.N())
	}

	var (
		targets = inst.Targets()
		held    []bool
	)
	if inst.model.HouseLike() {
		held = make([]bool, targets)
	}

	for i, t := range m.pairs {
		if t == Unmatched {
			continue
		}
		if t < 0 || t >= targets {
			return fmt.Errorf("%w: agent %d -> %d", ErrOutOfBounds, i, t)
		}
		if inst.model.Bilateral() {
			if t == i {
				return fmt.Errorf("%w: agent %d", ErrSelfPair, i)
			}
			if m.pairs[t] != i {
				return fmt.Errorf("%w: %d -> %d but %d -> %d", ErrAsymmetric, i, t, t, m.pairs[t])
			}
			if inst.model == Marriage && inst.IsMan(i) == inst.IsMan(t) {
				return fmt.Errorf("%w: %d and %d", ErrSameSide, i, t)
			}
		} else {
			if held[t] {
				return fmt.Errorf("%w: good %d", ErrGoodOverAssigned, t)
			}
			held[t] = true
		}
		if !inst.Acceptable(i, t) {
			return fmt.Errorf("%w: agent %d -> %d", ErrUnacceptable, i, t)
		}
	}

	return nil
}

// CheckK reports ErrKOutOfRange unless 1 <= k <= inst.N().
func CheckK(inst *Instance, k int) error {
	if k < 1 || k > inst.N() {
		return fmt.Errorf("%w: k=%d, n=%d", ErrKOutOfRange, k, inst.N())
	}

	return nil
}

// IsValid is the boolean form of Validate. It never panics.
func IsValid(m *Matching, inst *Instance) bool { return Validate(m, inst) == nil }

// IsMaximal reports whether no two free parties could be added to the valid
// matching m: no unmatched agent has an acceptable free good (house models)
// or a free, mutually acceptable partner (Roommates). A Marriage matching is
// maximal only when it is complete.
//
// Complexity: O(sum of list lengths).
func IsMaximal(m *Matching, inst *Instance) bool {
	if !inst.model.AllowsUnmatched() {
		return m.Matched() == len(m.pairs)
	}
	var taken []bool
	if inst.model.HouseLike() {
		taken = make([]bool, inst.numGoods)
		for _, t := range m.pairs {
			if t != Unmatched {
				taken[t] = true
			}
		}
	}
	for i, t := range m.pairs {
		if t != Unmatched {
			continue
		}
		l := inst.Prefs(i)
		for j := 0; j < l.Len(); j++ {
			o := l.At(j)
			if inst.model.HouseLike() {
				if !taken[o] {
					return false
				}
				continue
			}
			if m.pairs[o] == Unmatched && inst.Acceptable(i, o) {
				return false
			}
		}
	}

	return true
}
