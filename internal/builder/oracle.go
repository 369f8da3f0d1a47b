package builder

import "github.com/katalvlaran/kstable/market"

// Enumerate calls visit on every valid matching of inst, in a fixed order.
// Marriage matchings are complete. The matching passed to visit is reused;
// Clone it to keep it. Returning false from visit stops the walk.
//
// Complexity: exponential; intended for n <= 8.
func Enumerate(inst *market.Instance, visit func(m *market.Matching) bool) {
	enumerate(inst, inst.Model().AllowsUnmatched(), visit)
}

// EnumerateAlternatives is Enumerate over partial matchings: any agent, in
// every model, may stay unmatched. These are the alternatives a coalition
// may propose.
func EnumerateAlternatives(inst *market.Instance, visit func(m *market.Matching) bool) {
	enumerate(inst, true, visit)
}

func enumerate(inst *market.Instance, single bool, visit func(m *market.Matching) bool) {
	m := market.NewMatching(inst)
	var held []bool
	if inst.Model().HouseLike() {
		held = make([]bool, inst.Targets())
	}

	var rec func(i int) bool
	rec = func(i int) bool {
		for i < inst.N() && m.IsMatched(i) {
			i++
		}
		if i == inst.N() {
			return visit(m)
		}
		l := inst.Prefs(i)
		for r := 0; r < l.Len(); r++ {
			t := l.At(r)
			if !inst.Acceptable(i, t) {
				continue
			}
			if held != nil {
				if held[t] {
					continue
				}
				held[t] = true
			} else if t < i || m.IsMatched(t) {
				continue
			}
			m.Assign(i, t)
			ok := rec(i + 1)
			m.Unassign(i)
			if held != nil {
				held[t] = false
			}
			if !ok {
				return false
			}
		}

		if !single {
			return true
		}

		return rec(i + 1)
	}
	rec(0)
}

// MaxCoalition returns the largest number of agents any partial alternative
// strictly improves over m.
func MaxCoalition(m *market.Matching, inst *market.Instance) int {
	best := 0
	EnumerateAlternatives(inst, func(alt *market.Matching) bool {
		if c := market.CountImproved(inst, m, alt); c > best {
			best = c
		}

		return true
	})

	return best
}

// CountStable returns the number of valid k-stable matchings of inst and
// whether any of them is maximal.
func CountStable(inst *market.Instance, k int) (count int, anyMaximal bool) {
	Enumerate(inst, func(m *market.Matching) bool {
		if k == 1 || MaxCoalition(m, inst) < k {
			count++
			if market.IsMaximal(m, inst) {
				anyMaximal = true
			}
		}

		return true
	})

	return count, anyMaximal
}
