package market

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Matching is an assignment buffer: pairs[i] is agent i's partner (bilateral
// models) or good (house models), or Unmatched.
//
// The search engine mutates a private Matching in place with Assign/Unassign;
// any Matching handed to a caller is a fresh Clone and is not touched again.
// A Matching is not safe for concurrent mutation.
type Matching struct {
	model Model
	pairs []int
}

// NewMatching returns an all-unmatched matching sized for inst.
func NewMatching(inst *Instance) *Matching {
	m := &Matching{model: inst.model, pairs: make([]int, inst.N())}
	for i := range m.pairs {
		m.pairs[i] = Unmatched
	}

	return m
}

// FromPairs copies pairs into a matching for inst. Only the length is
// checked here; use Validate for feasibility.
//
// Errors: ErrNilInstance, ErrModelMismatch when len(pairs) != inst.N().
func FromPairs(inst *Instance, pairs []int) (*Matching, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if len(pairs) != inst.N() {
		return nil, fmt.Errorf("%w: %d pairs for %d agents", ErrModelMismatch, len(pairs), inst.N())
	}

	return &Matching{model: inst.model, pairs: slices.Clone(pairs)}, nil
}

// Model returns the model the matching was built for.
func (m *Matching) Model() Model { return m.model }

// N returns the number of agents.
func (m *Matching) N() int { return len(m.pairs) }

// Partner returns agent i's partner or good, or Unmatched.
func (m *Matching) Partner(i int) int { return m.pairs[i] }

// IsMatched reports whether agent i has a partner or good.
func (m *Matching) IsMatched(i int) bool { return m.pairs[i] != Unmatched }

// Pairs returns a copy of the assignment vector.
func (m *Matching) Pairs() []int { return slices.Clone(m.pairs) }

// Matched returns the number of agents with an assignment.
func (m *Matching) Matched() int {
	var c int
	for _, p := range m.pairs {
		if p != Unmatched {
			c++
		}
	}

	return c
}

// Assign gives agent i the target t. In bilateral models t is an agent and
// the pair is recorded on both sides. The caller guarantees that i (and t,
// when bilateral) are currently unmatched.
func (m *Matching) Assign(i, t int) {
	m.pairs[i] = t
	if m.model.Bilateral() {
		m.pairs[t] = i
	}
}

// Unassign clears agent i (and its partner in bilateral models) and returns
// the previous target, or Unmatched when i was free.
func (m *Matching) Unassign(i int) int {
	t := m.pairs[i]
	if t == Unmatched {
		return Unmatched
	}
	m.pairs[i] = Unmatched
	if m.model.Bilateral() {
		m.pairs[t] = Unmatched
	}

	return t
}

// Reset marks every agent unmatched.
func (m *Matching) Reset() {
	for i := range m.pairs {
		m.pairs[i] = Unmatched
	}
}

// Clone returns a deep copy.
func (m *Matching) Clone() *Matching {
	return &Matching{model: m.model, pairs: slices.Clone(m.pairs)}
}

// Equal reports whether m and o describe the same assignment.
func (m *Matching) Equal(o *Matching) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.model == o.model && slices.Equal(m.pairs, o.pairs)
}

// String renders the matching, e.g. "Marriage{0-2 1-3}" or "HouseAllocation{0:1 1:- 2:0}".
func (m *Matching) String() string {
	var b strings.Builder
	b.WriteString(m.model.String())
	b.WriteByte('{')
	first := true
	for i, p := range m.pairs {
		if m.model.Bilateral() {
			if p == Unmatched || p < i {
				continue
			}
			if !first {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%d-%d", i, p)
		} else {
			if !first {
				b.WriteByte(' ')
			}
			if p == Unmatched {
				fmt.Fprintf(&b, "%d:-", i)
			} else {
				fmt.Fprintf(&b, "%d:%d", i, p)
			}
		}
		first = false
	}
	b.WriteByte('}')

	return b.String()
}

// CountImproved returns the number of agents that strictly prefer their
// assignment under alt to their assignment under cur. Both matchings must
// be sized for inst.
func CountImproved(inst *Instance, cur, alt *Matching) int {
	var c int
	for i := 0; i < inst.N(); i++ {
		if inst.Prefers(i, alt.pairs[i], cur.pairs[i]) {
			c++
		}
	}

	return c
}
