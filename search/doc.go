// Package search finds k-stable matchings, decides their existence and
// counts them.
//
// Find dispatches on the regime of k relative to n:
//
//   - k == 1 (RegimeTrivial): every valid matching is 1-stable by convention;
//     a greedy maximal matching is returned (ErrNotFound for a Marriage
//     instance with no complete matching).
//   - k >= LargeKRatio·n (RegimeLargeK): near-consensus thresholds. Greedy
//     candidates that favour mutually high-ranked pairs are verified; when
//     none passes the engine falls back to backtracking unless TrustLargeK
//     is set.
//   - otherwise (RegimeBacktrack): candidates first, then exhaustive search.
//
// The backtracking engine assigns agents in index order, tries partners in
// preference order (ties by ascending ID) and then, except in Marriage where
// every agent must be matched, the unmatched branch. It
// keeps one private matching buffer and undoes every assignment on the way
// back, so the buffer is unwound whatever the outcome; found matchings are
// returned as clones.
//
// Pruning is sound: the agents already decided keep their assignment in
// every completion, and an agent's improvement depends only on its own
// assignment, so the largest coalition among decided agents bounds the
// coalition of every completion from below (verify.Reaches). Find only
// accepts maximal leaves: extending a matching never enlarges a coalition,
// so a k-stable matching exists iff a maximal one does.
//
// Outcomes: a matching, ErrNotFound (definitive), or ErrCanceled /
// ErrBudgetExceeded (unknown, never to be read as "stable").
package search
