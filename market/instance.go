package market

import (
	"fmt"

	"github.com/katalvlaran/kstable/prefs"
)

// Instance is an immutable problem instance. Build it with one of the
// New* constructors; every accessor is read-only and safe for concurrent use.
type Instance struct {
	model    Model
	agents   []Agent
	numMen   int // Marriage only
	numGoods int // house models only
}

// NewHouseAllocation builds a HouseAllocation instance: len(lists) agents and
// as many goods. lists[i] is agent i's strict order over goods, best first.
//
// Errors: ErrNoAgents, ErrTooManyAgents, ErrBadPreferences.
func NewHouseAllocation(lists [][]int) (*Instance, error) {
	n := len(lists)
	if err := checkSize(n); err != nil {
		return nil, err
	}
	inst := &Instance{model: HouseAllocation, agents: make([]Agent, n), numGoods: n}
	for i, order := range lists {
		l, err := prefs.NewStrict(n, order)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d: %w", ErrBadPreferences, i, err)
		}
		inst.agents[i] = Agent{ID: i, Prefs: l}
	}

	return inst, nil
}

// NewPartialHouseAllocation builds a PartialHouseAllocation instance over
// numGoods goods. groups[i] is agent i's list of indifference groups, best
// group first; goods absent from it are unacceptable to i.
//
// Errors: ErrNoAgents, ErrTooManyAgents, ErrInvalidArgument (numGoods), ErrBadPreferences.
func NewPartialHouseAllocation(numGoods int, groups [][][]int) (*Instance, error) {
	n := len(groups)
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if numGoods <= 0 || numGoods > MaxAgents {
		return nil, fmt.Errorf("%w: numGoods=%d", ErrInvalidArgument, numGoods)
	}
	inst := &Instance{model: PartialHouseAllocation, agents: make([]Agent, n), numGoods: numGoods}
	for i, g := range groups {
		l, err := prefs.NewWeak(numGoods, g)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d: %w", ErrBadPreferences, i, err)
		}
		inst.agents[i] = Agent{ID: i, Prefs: l}
	}

	return inst, nil
}

// NewMarriage builds a Marriage instance with men 0..numMen-1 and women
// numMen..len(lists)-1. Each list may only name agents of the other side.
//
// Errors: ErrNoAgents, ErrTooManyAgents, ErrInvalidArgument (numMen),
// ErrSelfReference, ErrWrongSide, ErrBadPreferences.
func NewMarriage(numMen int, lists [][]int) (*Instance, error) {
	n := len(lists)
	if err := checkSize(n); err != nil {
		return nil, err
	}
	if numMen < 0 || numMen > n {
		return nil, fmt.Errorf("%w: numMen=%d with %d agents", ErrInvalidArgument, numMen, n)
	}
	inst := &Instance{model: Marriage, agents: make([]Agent, n), numMen: numMen}
	for i, order := range lists {
		for _, j := range order {
			if j == i {
				return nil, fmt.Errorf("%w: agent %d", ErrSelfReference, i)
			}
			if j >= 0 && j < n && (i < numMen) == (j < numMen) {
				return nil, fmt.Errorf("%w: agent %d lists %d", ErrWrongSide, i, j)
			}
		}
		l, err := prefs.NewStrict(n, order)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d: %w", ErrBadPreferences, i, err)
		}
		inst.agents[i] = Agent{ID: i, Prefs: l}
	}

	return inst, nil
}

// NewRoommates builds a Roommates instance. lists[i] is agent i's strict
// order over other agents.
//
// Errors: ErrNoAgents, ErrTooManyAgents, ErrSelfReference, ErrBadPreferences.
func NewRoommates(lists [][]int) (*Instance, error) {
	n := len(lists)
	if err := checkSize(n); err != nil {
		return nil, err
	}
	inst := &Instance{model: Roommates, agents: make([]Agent, n)}
	for i, order := range lists {
		for _, j := range order {
			if j == i {
				return nil, fmt.Errorf("%w: agent %d", ErrSelfReference, i)
			}
		}
		l, err := prefs.NewStrict(n, order)
		if err != nil {
			return nil, fmt.Errorf("%w: agent %d: %w", ErrBadPreferences, i, err)
		}
		inst.agents[i] = Agent{ID: i, Prefs: l}
	}

	return inst, nil
}

func checkSize(n int) error {
	if n <= 0 {
		return ErrNoAgents
	}
	if n > MaxAgents {
		return fmt.Errorf("%w: %d > %d", ErrTooManyAgents, n, MaxAgents)
	}

	return nil
}

// Model returns the market model.
func (in *Instance) Model() Model { return in.model }

// N returns the number of agents.
func (in *Instance) N() int { return len(in.agents) }

// NumMen returns the size of the first Marriage side (0 for other models).
func (in *Instance) NumMen() int { return in.numMen }

// NumWomen returns the size of the second Marriage side (0 for other models).
func (in *Instance) NumWomen() int {
	if in.model != Marriage {
		return 0
	}

	return len(in.agents) - in.numMen
}

// NumGoods returns the number of goods (0 for bilateral models).
func (in *Instance) NumGoods() int { return in.numGoods }

// Targets returns the size of the partner universe: goods for house models, agents otherwise.
func (in *Instance) Targets() int {
	if in.model.HouseLike() {
		return in.numGoods
	}

	return len(in.agents)
}

// Prefs returns agent i's preference list.
func (in *Instance) Prefs(i int) *prefs.List { return in.agents[i].Prefs }

// IsMan reports whether agent i is on the first Marriage side.
func (in *Instance) IsMan(i int) bool { return in.model == Marriage && i < in.numMen }

// Acceptable reports whether agent i may be assigned t. In bilateral models
// acceptability is mutual and side-respecting; in house models it is i's list.
func (in *Instance) Acceptable(i, t int) bool {
	if !in.agents[i].Prefs.Acceptable(t) {
		return false
	}
	if !in.model.Bilateral() {
		return true
	}
	if t == i {
		return false
	}
	if in.model == Marriage && (i < in.numMen) == (t < in.numMen) {
		return false
	}

	return in.agents[t].Prefs.Acceptable(i)
}

// Prefers reports whether agent i strictly prefers a to b (Unmatched allowed on either side).
func (in *Instance) Prefers(i, a, b int) bool { return in.agents[i].Prefs.Prefers(a, b) }

// MaxListLen returns the longest preference list length.
func (in *Instance) MaxListLen() int {
	var m int
	for i := range in.agents {
		if l := in.agents[i].Prefs.Len(); l > m {
			m = l
		}
	}

	return m
}
