package prefs

import "errors"

// NotAcceptable is the rank of a target that is not on the list.
const NotAcceptable = -1

// Unmatched denotes "no partner / no good". It is never acceptable.
const Unmatched = -1

// Sentinel errors for preference list construction.
var (
	// ErrBadUniverse indicates a negative universe size.
	ErrBadUniverse = errors.New("prefs: universe size must be non-negative")

	// ErrOutOfRange indicates a target outside [0, universe).
	ErrOutOfRange = errors.New("prefs: target out of range")

	// ErrDuplicateEntry indicates a target listed more than once.
	ErrDuplicateEntry = errors.New("prefs: duplicate target")

	// ErrEmptyGroup indicates an indifference group with no members.
	ErrEmptyGroup = errors.New("prefs: empty indifference group")
)

// List is an immutable ranked preference list over targets 0..Universe()-1.
//
// The zero value is an empty list over an empty universe.
type List struct {
	universe int

	// order is the flattened list, best group first; members of one group
	// appear in ascending target ID so iteration is deterministic.
	order []int

	// start[g] is the offset of group g in order; start[len(start)-1] == len(order).
	start []int

	// rank[t] is the group index of t, or NotAcceptable.
	rank []int
}
