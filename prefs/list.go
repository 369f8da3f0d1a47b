package prefs

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// NewStrict builds a strict list (no ties) from order, most preferred first.
//
// Errors: ErrBadUniverse, ErrOutOfRange, ErrDuplicateEntry.
// Complexity: O(U + L).
func NewStrict(universe int, order []int) (*List, error) {
	groups := make([][]int, len(order))
	for i, t := range order {
		groups[i] = []int{t}
	}

	return NewWeak(universe, groups)
}

// NewWeak builds a list from indifference groups, best group first.
// Members of a group are tied. The input slices are not retained.
//
// Errors: ErrBadUniverse, ErrOutOfRange, ErrDuplicateEntry, ErrEmptyGroup.
// Complexity: O(U + L log L) (each group is sorted for deterministic order).
func NewWeak(universe int, groups [][]int) (*List, error) {
	if universe < 0 {
		return nil, ErrBadUniverse
	}

	l := &List{
		universe: universe,
		start:    make([]int, 0, len(groups)+1),
		rank:     make([]int, universe),
	}
	for t := range l.rank {
		l.rank[t] = NotAcceptable
	}

	for g, members := range groups {
		if len(members) == 0 {
			return nil, fmt.Errorf("%w: group %d", ErrEmptyGroup, g)
		}
		l.start = append(l.start, len(l.order))
		sorted := slices.Clone(members)
		slices.Sort(sorted)
		for _, t := range sorted {
			if t < 0 || t >= universe {
				return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, t, universe)
			}
			if l.rank[t] != NotAcceptable {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateEntry, t)
			}
			l.rank[t] = g
			l.order = append(l.order, t)
		}
	}
	l.start = append(l.start, len(l.order))

	return l, nil
}

// Universe returns the number of possible targets.
func (l *List) Universe() int { return l.universe }

// Len returns the number of acceptable targets.
func (l *List) Len() int { return len(l.order) }

// Groups returns the number of indifference groups.
func (l *List) Groups() int {
	if len(l.start) == 0 {
		return 0
	}

	return len(l.start) - 1
}

// Strict reports whether the list has no ties.
func (l *List) Strict() bool { return l.Groups() == l.Len() }

// Group returns a copy of the members of group g (ascending IDs), or nil if g is out of range.
func (l *List) Group(g int) []int {
	if g < 0 || g >= l.Groups() {
		return nil
	}

	return slices.Clone(l.order[l.start[g]:l.start[g+1]])
}

// Order returns a copy of the flattened list: best group first, ties by ascending ID.
func (l *List) Order() []int { return slices.Clone(l.order) }

// At returns the i-th target of the flattened order.
func (l *List) At(i int) int { return l.order[i] }

// Rank returns the group index of t (0 = most preferred) or NotAcceptable.
// Unmatched and out-of-range targets are NotAcceptable.
func (l *List) Rank(t int) int {
	if t < 0 || t >= l.universe {
		return NotAcceptable
	}

	return l.rank[t]
}

// Acceptable reports whether t is on the list.
func (l *List) Acceptable(t int) bool { return l.Rank(t) != NotAcceptable }

// Prefers reports whether a is strictly better than b.
//
//   - a == Unmatched: never preferred.
//   - b == Unmatched: a is preferred iff a is acceptable.
//   - otherwise both must be acceptable and rank(a) < rank(b).
func (l *List) Prefers(a, b int) bool {
	ra := l.Rank(a)
	if ra == NotAcceptable {
		return false
	}
	if b == Unmatched {
		return true
	}
	rb := l.Rank(b)
	if rb == NotAcceptable {
		return false
	}

	return ra < rb
}

// Tied reports whether a and b are distinct acceptable targets in the same group.
func (l *List) Tied(a, b int) bool {
	if a == b {
		return false
	}
	ra := l.Rank(a)

	return ra != NotAcceptable && ra == l.Rank(b)
}

// Above returns a copy of the targets strictly preferred to t, best first.
// For t == Unmatched (or any unacceptable t) it returns the whole list.
func (l *List) Above(t int) []int {
	return slices.Clone(l.order[:l.NumAbove(t)])
}

// NumAbove returns how many targets are strictly preferred to t; they are
// At(0) .. At(NumAbove(t)-1).
func (l *List) NumAbove(t int) int {
	r := l.Rank(t)
	if r == NotAcceptable {
		return len(l.order)
	}

	return l.start[r]
}

// String renders the list with ties in braces, e.g. "[3 {0 2} 1]".
func (l *List) String() string {
	var b []byte
	b = append(b, '[')
	for g := 0; g < l.Groups(); g++ {
		if g > 0 {
			b = append(b, ' ')
		}
		members := l.order[l.start[g]:l.start[g+1]]
		if len(members) > 1 {
			b = append(b, '{')
		}
		for i, t := range members {
			if i > 0 {
				b = append(b, ' ')
			}
			b = fmt.Appendf(b, "%d", t)
		}
		if len(members) > 1 {
			b = append(b, '}')
		}
	}
	b = append(b, ']')

	return string(b)
}
