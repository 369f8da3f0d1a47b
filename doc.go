// Package kstable decides k-stability of matchings: whether a group of k or
// more agents could all do strictly better under some other valid matching.
//
// What is in the box?
//
//	• Four market models: house allocation (strict or with ties, goods may
//	  outnumber agents), stable marriage and stable roommates
//	• Exact verification: the largest blocking coalition is a maximum
//	  matching of the improvement graph (Hopcroft–Karp for house models,
//	  weighted blossom for bilateral ones), with an optional pseudo-boolean
//	  backend built on gophersat
//	• Search: greedy candidates, then pruned backtracking with a definitive
//	  "none exists" answer
//	• Counting, and a concurrent batch runner with a memo
//
// Packages:
//
//	prefs/     preference lists with optional indifference groups
//	market/    instances, matchings, validity, fingerprints, error taxonomy
//	maxmatch/  Hopcroft–Karp, Dinic, Edmonds blossom, maximum-weight matching
//	improve/   improvement graphs (who strictly gains from which pair)
//	verify/    IsKStable, Check, MaxCoalition
//	search/    Find, Exists, Count, Greedy, Candidates
//	batch/     worker pool over many (instance, k) jobs
//	logging/   Logger interface with slog and nop implementations
//
// This package is a thin facade with boolean and nil sentinels: every
// failure (bad input, cancellation) maps to false, nil or zero. Use the
// subpackages for errors, options and reports.
//
// Quick example:
//
//	inst, _ := market.NewHouseAllocation([][]int{{1, 2, 0}, {2, 0, 1}, {0, 1, 2}})
//	m := kstable.FindKStableMatching(inst, 2) // HouseAllocation{0:1 1:2 2:0}
package kstable
