// SPDX-License-Identifier: MIT
// Package: kstable/internal/builder
//
// options.go - functional options for instance constructors.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed / WithRand.

package builder

import "math/rand"

// Option customizes a constructor by mutating its config.
type Option func(*config)

type config struct {
	rng      *rand.Rand
	density  float64 // probability that a target is acceptable
	tieProb  float64 // probability that a good joins the previous group (partial model)
	numGoods int     // partial model; 0 means n
	numMen   int     // marriage; -1 means n/2
}

const (
	defaultDensity = 1.0
	defaultTieProb = 0.3
)

func newConfig(opts ...Option) config {
	cfg := config{density: defaultDensity, tieProb: defaultTieProb, numMen: -1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed attaches a deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithDensity sets the probability that each target is acceptable. Panics outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithDensity out of [0,1]")
	}

	return func(c *config) {
		c.density = p
	}
}

// WithTieProb sets the probability that a good is tied with its predecessor
// (PartialHouseAllocation). Panics outside [0,1].
func WithTieProb(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithTieProb out of [0,1]")
	}

	return func(c *config) {
		c.tieProb = p
	}
}

// WithGoods sets the number of goods for PartialHouseAllocation. Panics below 1.
func WithGoods(n int) Option {
	if n < 1 {
		panic("builder: WithGoods below 1")
	}

	return func(c *config) {
		c.numGoods = n
	}
}

// WithMen sets the number of men for Marriage. Panics below 0.
func WithMen(n int) Option {
	if n < 0 {
		panic("builder: WithMen below 0")
	}

	return func(c *config) {
		c.numMen = n
	}
}
