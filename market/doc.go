// Package market defines the problem data model of kstable: the matching
// models, immutable problem instances, the mutable Matching buffer, and the
// matching validator.
//
// Models:
//
//   - HouseAllocation:        n agents, n goods, strict preferences over goods.
//   - PartialHouseAllocation: n agents, NumGoods goods, preferences over an
//     acceptable subset of goods with indifference groups.
//   - Marriage:               men 0..NumMen-1 and women NumMen..n-1; pairs cross sides.
//   - Roommates:              one agent set; any two mutually acceptable agents may pair.
//
// A Matching is a partial function agent → partner/good, with Unmatched (-1)
// for "no assignment". In the bilateral models (Marriage, Roommates) it is
// symmetric: Partner(Partner(i)) == i whenever Partner(i) != Unmatched.
//
// Validate / IsValid check, in order: shape, bounds, self-pairing, symmetry,
// side membership (Marriage), good capacity (house models) and mutual
// acceptability. IsValid never panics and never returns an error: it is the
// boolean form used by the verifier and the search engine.
//
// Errors:
//
//	ErrInvalidArgument    - bad sizes, bad preference lists, k out of range.
//	ErrInfeasibleMatching - structural or model-specific validity failure.
//	ErrAllocationFailure  - a working buffer would exceed a configured budget.
//
// Each detailed sentinel (ErrAsymmetric, ErrSameSide, …) wraps one of these
// three, so callers can branch on either level with errors.Is.
package market
