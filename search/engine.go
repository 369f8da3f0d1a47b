package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kstable/improve"
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/verify"
)

// checkEvery is the node interval between context polls.
const checkEvery = 4096

type engineMode int

const (
	modeFind engineMode = iota
	modeCount
)

// engine holds the backtracking state. One engine serves one call and owns
// its matching buffer.
type engine struct {
	inst  *market.Instance
	k     int
	mode   engineMode
	house  bool
	single bool // the model permits unmatched agents

	ctx      context.Context
	maxNodes int
	verify   []verify.Option

	// Current search state
	m      *market.Matching
	held   []bool // house models: goods taken
	cursor int    // agents below cursor are decided

	// Outcome
	found  *market.Matching
	count  int
	nodes  int
	pruned int
	err    error
}

func newEngine(inst *market.Instance, k int, mode engineMode, o Options) *engine {
	e := &engine{
		inst:     inst,
		k:        k,
		mode:     mode,
		house:    inst.Model().HouseLike(),
		single:   inst.Model().AllowsUnmatched(),
		ctx:      o.Ctx,
		maxNodes: o.MaxNodes,
		verify:   o.Verify,
		m:        market.NewMatching(inst),
	}
	if e.house {
		e.held = make([]bool, inst.Targets())
	}

	return e
}

// run explores the whole tree (or until found / stopped).
func (e *engine) run() {
	if err := e.ctx.Err(); err != nil {
		e.err = fmt.Errorf("%w: %w", ErrCanceled, err)

		return
	}
	e.dfs(0)
}

// tick counts a node and reports whether the search must stop.
func (e *engine) tick() bool {
	e.nodes++
	if e.maxNodes > 0 && e.nodes > e.maxNodes {
		e.err = ErrBudgetExceeded

		return true
	}
	if e.nodes%checkEvery == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = fmt.Errorf("%w: %w", ErrCanceled, err)

			return true
		}
	}

	return false
}

// decided reports whether agent i's assignment is fixed in every completion.
func (e *engine) decided(i int) bool {
	return i < e.cursor || (!e.house && e.m.IsMatched(i))
}

// doomed reports whether the decided agents alone already form a blocking
// coalition of size k, which no completion can undo.
func (e *engine) doomed() bool {
	if e.k <= 1 {
		return false
	}
	n := e.cursor
	if !e.house {
		for j := e.cursor; j < e.inst.N(); j++ {
			if e.m.IsMatched(j) {
				n++
			}
		}
	}
	if n < e.k {
		return false
	}

	return verify.Reaches(improve.BuildPartial(e.m, e.inst, e.decided), e.k)
}

// dfs decides agent i and beyond; it returns true when the search must stop.
func (e *engine) dfs(i int) bool {
	if e.tick() {
		return true
	}
	for i < e.inst.N() && e.m.IsMatched(i) {
		i++
	}
	e.cursor = i
	if e.doomed() {
		e.pruned++

		return false
	}
	if i == e.inst.N() {
		return e.leaf()
	}

	l := e.inst.Prefs(i)
	for r := 0; r < l.Len(); r++ {
		t := l.At(r)
		if !e.free(i, t) {
			continue
		}
		e.assign(i, t)
		stop := e.dfs(i + 1)
		e.undo(i, t)
		if stop {
			return true
		}
	}
	if !e.single {
		return false
	}

	return e.dfs(i + 1)
}

func (e *engine) free(i, t int) bool {
	if e.house {
		return !e.held[t]
	}

	return t > i && !e.m.IsMatched(t) && e.inst.Acceptable(i, t)
}

func (e *engine) assign(i, t int) {
	e.m.Assign(i, t)
	if e.house {
		e.held[t] = true
	}
}

func (e *engine) undo(i, t int) {
	e.m.Unassign(i)
	if e.house {
		e.held[t] = false
	}
}

// leaf handles a complete matching.
func (e *engine) leaf() bool {
	switch e.mode {
	case modeFind:
		if !market.IsMaximal(e.m, e.inst) {
			return false
		}
		if e.stable() {
			e.found = e.m.Clone()

			return true
		}
	case modeCount:
		if e.stable() {
			e.count++
		}
	}

	return false
}

func (e *engine) stable() bool {
	return e.k == 1 || verify.IsKStable(e.m, e.inst, e.k, e.verify...)
}
