package builder

import (
	"fmt"

	"github.com/katalvlaran/kstable/market"
)

// Rotation3 is the three-agent house allocation in which the identity
// matching can be improved for every agent by rotating the goods.
func Rotation3() *market.Instance {
	inst, err := market.NewHouseAllocation([][]int{{1, 2, 0}, {2, 0, 1}, {0, 1, 2}})
	if err != nil {
		panic(err)
	}

	return inst
}

// Random returns a random instance of model with n agents. A target enters
// an agent's list with the configured density, in random order.
//
// Errors: ErrTooFewAgents, ErrNeedRandSource, ErrUnknownModel, and any
// market constructor error.
//
// Complexity: O(n · targets).
func Random(model market.Model, n int, opts ...Option) (*market.Instance, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		return nil, fmt.Errorf("Random(%s): n=%d: %w", model, n, ErrTooFewAgents)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("Random(%s): %w", model, ErrNeedRandSource)
	}

	switch model {
	case market.HouseAllocation:
		return market.NewHouseAllocation(cfg.lists(n, func(int) []int { return span(0, n) }))
	case market.PartialHouseAllocation:
		goods := cfg.numGoods
		if goods == 0 {
			goods = n
		}
		groups := make([][][]int, n)
		for i := range groups {
			groups[i] = cfg.tie(cfg.pick(span(0, goods)))
		}

		return market.NewPartialHouseAllocation(goods, groups)
	case market.Marriage:
		men := cfg.numMen
		if men < 0 || men > n {
			men = n / 2
		}

		return market.NewMarriage(men, cfg.lists(n, func(i int) []int {
			if i < men {
				return span(men, n)
			}

			return span(0, men)
		}))
	case market.Roommates:
		return market.NewRoommates(cfg.lists(n, func(i int) []int {
			return append(span(0, i), span(i+1, n)...)
		}))
	default:
		return nil, fmt.Errorf("Random(%d): %w", int(model), ErrUnknownModel)
	}
}

// lists builds one shuffled, density-filtered list per agent from candidates(i).
func (c config) lists(n int, candidates func(i int) []int) [][]int {
	out := make([][]int, n)
	for i := range out {
		out[i] = c.pick(candidates(i))
	}

	return out
}

// pick shuffles cand and keeps each entry with probability density.
func (c config) pick(cand []int) []int {
	c.rng.Shuffle(len(cand), func(a, b int) { cand[a], cand[b] = cand[b], cand[a] })
	kept := cand[:0]
	for _, t := range cand {
		if c.rng.Float64() < c.density {
			kept = append(kept, t)
		}
	}

	return kept
}

// tie splits order into indifference groups.
func (c config) tie(order []int) [][]int {
	var groups [][]int
	for i, t := range order {
		if i > 0 && c.rng.Float64() < c.tieProb {
			groups[len(groups)-1] = append(groups[len(groups)-1], t)

			continue
		}
		groups = append(groups, []int{t})
	}

	return groups
}

func span(from, to int) []int {
	if to <= from {
		return nil
	}
	s := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		s = append(s, i)
	}

	return s
}
