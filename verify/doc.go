// Package verify decides k-stability of a fixed matching.
//
// A matching μ of an instance I is k-stable iff no alternative feasible
// matching leaves k or more agents strictly better off at once. The package
// computes that maximum number, the largest blocking coalition, from the
// improvement graph of μ (package improve):
//
//   - HouseAllocation / PartialHouseAllocation: every improvement edge serves
//     one agent, so the coalition is a maximum bipartite matching
//     (maxmatch.HopcroftKarp).
//   - Marriage / Roommates: a pair may improve one or both partners; edges
//     carry that count and the coalition is a maximum-weight matching
//     (maxmatch.MaxWeight). A maximum-cardinality matching c brackets it as
//     c <= coalition <= 2c and settles most decisions before the weighted pass.
//
// A second backend, PseudoBoolean, encodes "some matching of the improvement
// graph improves at least k agents" as a pseudo-boolean feasibility problem and
// hands it to gophersat. It is exact but exponential in the worst case and is
// mostly useful as an independent cross-check. A third backend, Flow, is
// Combinatorial with house-model coalitions computed as a unit max flow
// (maxmatch.Dinic).
//
// Coalitions may propose partial alternatives: agents outside the coalition
// may be left unmatched, in every model. Report.Alternative for Marriage is
// completed to a full matching whenever the remaining agents admit one.
//
// IsKStable fails closed: invalid matchings and k outside [1, n] yield false.
// k == 1 is satisfied by every valid matching by convention.
//
// Errors (Check, MaxCoalition):
//
//	market.ErrKOutOfRange        - k outside [1, n].
//	market.ErrInfeasibleMatching - μ fails market.Validate.
//	market.ErrAllocationFailure  - PB encoding above Options.MaxPBVariables.
package verify
