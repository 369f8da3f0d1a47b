// Package prefs implements the per-agent preference index used throughout
// kstable: a ranked list of acceptable targets (partners or goods), most
// preferred first, optionally organised in indifference groups (ties).
//
// Ranks are group positions: rank 0 is the most preferred group, and every
// member of a group shares its rank. A target absent from the list is not
// acceptable and has rank NotAcceptable.
//
// Comparisons are strict:
//
//   - Prefers(a, b) is true only when a sits in a strictly better group than b.
//   - Two members of the same group are Tied; neither is preferred.
//   - The unmatched state (Unmatched) is worse than every acceptable target
//     and is never preferred to anything, including itself.
//
// Complexity:
//
//   - Rank, Acceptable, Prefers, Tied: O(1) (dense rank table).
//   - Above: O(1) slice view.
//   - Construction: O(U + L), U = universe size, L = list length.
//
// Errors:
//
//	ErrBadUniverse    - universe size is negative.
//	ErrOutOfRange     - a target lies outside [0, universe).
//	ErrDuplicateEntry - a target appears more than once.
//	ErrEmptyGroup     - an indifference group has no members.
package prefs
