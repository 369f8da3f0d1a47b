package kstable

import (
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/search"
	"github.com/katalvlaran/kstable/verify"
)

// IsKStable reports whether m is a valid k-stable matching of inst.
// Invalid input yields false.
func IsKStable(m *market.Matching, inst *market.Instance, k int) bool {
	return verify.IsKStable(m, inst, k)
}

// KStableMatchingExists reports whether inst admits a k-stable matching.
// Invalid input yields false.
func KStableMatchingExists(inst *market.Instance, k int) bool {
	ok, err := search.Exists(inst, k)

	return ok && err == nil
}

// FindKStableMatching returns a maximal k-stable matching of inst, or nil
// when none exists or the input is invalid. The caller owns the result.
func FindKStableMatching(inst *market.Instance, k int) *market.Matching {
	res, err := search.Find(inst, k)
	if err != nil {
		return nil
	}

	return res.Matching
}

// CountKStableMatchings returns the number of valid k-stable matchings of
// inst, the empty and non-maximal ones included; 0 on invalid input.
// Exponential: meant for small instances.
func CountKStableMatchings(inst *market.Instance, k int) int {
	n, err := search.Count(inst, k)
	if err != nil {
		return 0
	}

	return n
}
