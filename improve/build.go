package improve

import "github.com/katalvlaran/kstable/market"

// Build returns the improvement graph of m. m must be a valid matching of
// inst (see market.Validate); Build does not re-check it.
//
// Complexity: O(sum of preference list lengths).
func Build(m *market.Matching, inst *market.Instance) *Graph {
	return build(m, inst, nil)
}

// BuildPartial returns the improvement graph in which only agents with
// decided(i) == true may count as improving. Edges with no decided improving
// endpoint are dropped.
func BuildPartial(m *market.Matching, inst *market.Instance, decided func(i int) bool) *Graph {
	return build(m, inst, decided)
}

func build(m *market.Matching, inst *market.Instance, decided func(int) bool) *Graph {
	g := &Graph{Model: inst.Model(), N: inst.N(), Targets: inst.Targets()}
	counts := func(i int) bool { return decided == nil || decided(i) }

	if inst.Model().HouseLike() {
		for i := 0; i < g.N; i++ {
			if !counts(i) {
				continue
			}
			l := inst.Prefs(i)
			for r := 0; r < l.NumAbove(m.Partner(i)); r++ {
				g.Edges = append(g.Edges, Edge{U: i, V: l.At(r), Weight: 1, UImproves: true})
			}
		}

		return g
	}

	for i := 0; i < g.N; i++ {
		l := inst.Prefs(i)
		for r := 0; r < l.Len(); r++ {
			j := l.At(r)
			if j <= i || !inst.Acceptable(i, j) {
				continue
			}
			ui := counts(i) && inst.Prefers(i, j, m.Partner(i))
			vj := counts(j) && inst.Prefers(j, i, m.Partner(j))
			if !ui && !vj {
				continue
			}
			e := Edge{U: i, V: j, UImproves: ui, VImproves: vj}
			if ui {
				e.Weight++
			}
			if vj {
				e.Weight++
			}
			g.Edges = append(g.Edges, e)
		}
	}

	return g
}
