package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kstable/internal/builder"
	"github.com/katalvlaran/kstable/market"
)

func TestRandom_DeterministicPerSeed(t *testing.T) {
	for _, model := range []market.Model{
		market.HouseAllocation, market.PartialHouseAllocation, market.Marriage, market.Roommates,
	} {
		a, err := builder.Random(model, 6, builder.WithSeed(42), builder.WithDensity(0.7))
		require.NoError(t, err)
		b, err := builder.Random(model, 6, builder.WithSeed(42), builder.WithDensity(0.7))
		require.NoError(t, err)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint(), model.String())
		assert.Equal(t, model, a.Model())
	}
}

func TestRandom_Errors(t *testing.T) {
	_, err := builder.Random(market.Roommates, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewAgents)
	_, err = builder.Random(market.Roommates, 3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.Random(market.Model(42), 3, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrUnknownModel)
	assert.Panics(t, func() { builder.WithDensity(1.5) })
	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestEnumerate_CountsAllMatchings(t *testing.T) {
	// Complete roommates on 4 agents: 1 empty + 6 single pairs + 3 perfect.
	inst, err := market.NewRoommates([][]int{{1, 2, 3}, {0, 2, 3}, {0, 1, 3}, {0, 1, 2}})
	require.NoError(t, err)
	count := 0
	builder.Enumerate(inst, func(m *market.Matching) bool {
		require.True(t, market.IsValid(m, inst))
		count++

		return true
	})
	assert.Equal(t, 10, count)

	// House allocation on 3 agents with full lists: partial injections 3→3.
	count = 0
	builder.Enumerate(builder.Rotation3(), func(*market.Matching) bool {
		count++

		return true
	})
	assert.Equal(t, 34, count)
}

func TestEnumerate_MarriageIsComplete(t *testing.T) {
	inst, err := market.NewMarriage(2, [][]int{{2, 3}, {2, 3}, {0, 1}, {0, 1}})
	require.NoError(t, err)

	count := 0
	builder.Enumerate(inst, func(m *market.Matching) bool {
		require.True(t, market.IsValid(m, inst))
		require.Equal(t, 4, m.Matched())
		count++

		return true
	})
	assert.Equal(t, 2, count)

	// Alternatives: empty, four single pairs, two perfect.
	count = 0
	builder.EnumerateAlternatives(inst, func(m *market.Matching) bool {
		require.NoError(t, market.ValidatePartial(m, inst))
		count++

		return true
	})
	assert.Equal(t, 7, count)

	// One man, two women: no complete matching.
	uneven, err := market.NewMarriage(1, [][]int{{1, 2}, {0}, {0}})
	require.NoError(t, err)
	builder.Enumerate(uneven, func(*market.Matching) bool {
		t.Fatal("no valid matching expected")

		return false
	})
}

func TestMaxCoalition_Rotation(t *testing.T) {
	inst := builder.Rotation3()
	id, err := market.FromPairs(inst, []int{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, builder.MaxCoalition(id, inst))
}
