package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kstable/internal/builder"
	"github.com/katalvlaran/kstable/logging"
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/search"
	"github.com/katalvlaran/kstable/verify"
)

var allModels = []market.Model{
	market.HouseAllocation, market.PartialHouseAllocation, market.Marriage, market.Roommates,
}

// oddCycle is the three-agent roommates cycle: every matching leaves
// someone able to join a better pair, so no 2-stable matching exists.
func oddCycle(t *testing.T) *market.Instance {
	t.Helper()
	inst, err := market.NewRoommates([][]int{{1, 2}, {2, 0}, {0, 1}})
	require.NoError(t, err)

	return inst
}

func TestFind_Rotation(t *testing.T) {
	inst := builder.Rotation3()
	res, err := search.Find(inst, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, res.Matching.Pairs())
	assert.Equal(t, search.RegimeBacktrack, res.Regime)
	assert.Equal(t, 1, res.Candidates)
	assert.Zero(t, res.Nodes)
}

func TestFind_OddCycle(t *testing.T) {
	inst := oddCycle(t)

	_, err := search.Find(inst, 2)
	assert.ErrorIs(t, err, search.ErrNotFound)
	ok, err := search.Exists(inst, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	res, err := search.Find(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, search.RegimeLargeK, res.Regime)
	assert.True(t, market.IsMaximal(res.Matching, inst))

	n, err := search.Count(inst, 2)
	require.NoError(t, err)
	assert.Zero(t, n)
	n, err = search.Count(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestFind_Errors(t *testing.T) {
	inst := builder.Rotation3()
	_, err := search.Find(nil, 1)
	assert.ErrorIs(t, err, market.ErrInvalidArgument)
	_, err = search.Find(inst, 0)
	assert.ErrorIs(t, err, market.ErrKOutOfRange)
	_, err = search.Find(inst, 4)
	assert.ErrorIs(t, err, market.ErrKOutOfRange)
	_, err = search.Count(inst, 9)
	assert.ErrorIs(t, err, market.ErrKOutOfRange)
	_, err = search.Count(nil, 1)
	assert.ErrorIs(t, err, market.ErrNilInstance)
	ok, err := search.Exists(inst, 0)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestFind_TrivialK(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		inst, err := builder.Random(allModels[seed%4], 5, builder.WithSeed(seed), builder.WithDensity(0.6))
		require.NoError(t, err)
		res, err := search.Find(inst, 1)
		assert.Equal(t, search.RegimeTrivial, res.Regime)
		if valid, _ := builder.CountStable(inst, 1); valid == 0 {
			// Five agents cannot all marry.
			assert.ErrorIs(t, err, search.ErrNotFound)

			continue
		}
		require.NoError(t, err)
		assert.True(t, market.IsValid(res.Matching, inst))
		assert.True(t, market.IsMaximal(res.Matching, inst))
	}
}

func TestMarriage_MatchingsAreComplete(t *testing.T) {
	inst, err := market.NewMarriage(2, [][]int{{2, 3}, {2, 3}, {0, 1}, {0, 1}})
	require.NoError(t, err)

	for k, want := range map[int]int{1: 2, 2: 0, 3: 2, 4: 2} {
		got, err := search.Count(inst, k)
		require.NoError(t, err)
		assert.Equal(t, want, got, "k=%d", k)
	}
	res, err := search.Find(inst, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Matching.Matched())
	_, err = search.Find(inst, 2)
	assert.ErrorIs(t, err, search.ErrNotFound)

	// One man, two women: no valid matching at all.
	uneven, err := market.NewMarriage(1, [][]int{{1, 2}, {0}, {0}})
	require.NoError(t, err)
	for k := 1; k <= 3; k++ {
		_, err = search.Find(uneven, k)
		assert.ErrorIs(t, err, search.ErrNotFound, "k=%d", k)
		n, err := search.Count(uneven, k)
		require.NoError(t, err)
		assert.Zero(t, n)
	}
	assert.Nil(t, search.Greedy(uneven))
	assert.Empty(t, search.Candidates(uneven))
}

func TestGreedy_MarriageFallsBackToCompleteMatching(t *testing.T) {
	// Index-order greedy marries 0-2 and strands man 1, who only accepts 2.
	inst, err := market.NewMarriage(2, [][]int{{2, 3}, {2}, {0, 1}, {0}})
	require.NoError(t, err)
	g := search.Greedy(inst)
	require.NotNil(t, g)
	assert.Equal(t, []int{3, 2, 1, 0}, g.Pairs())
}

// TestAgainstBruteForce compares Find, Exists and Count with exhaustive
// enumeration on small random instances of every model and every k.
func TestAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		model := allModels[seed%4]
		n := 3 + int(seed%3)
		if model == market.Marriage {
			n = 4
		}
		inst, err := builder.Random(model, n,
			builder.WithSeed(seed), builder.WithDensity(0.7), builder.WithTieProb(0.3))
		require.NoError(t, err)

		for k := 1; k <= n; k++ {
			want, anyMaximal := builder.CountStable(inst, k)
			require.Equal(t, want > 0, anyMaximal, "seed %d k %d", seed, k)

			got, err := search.Count(inst, k)
			require.NoError(t, err)
			require.Equal(t, want, got, "seed %d %s k %d", seed, model, k)

			res, err := search.Find(inst, k)
			if want == 0 {
				require.ErrorIs(t, err, search.ErrNotFound, "seed %d k %d", seed, k)

				continue
			}
			require.NoError(t, err, "seed %d k %d", seed, k)
			require.True(t, market.IsValid(res.Matching, inst))
			require.True(t, market.IsMaximal(res.Matching, inst))
			require.True(t, k == 1 || builder.MaxCoalition(res.Matching, inst) < k)
			require.True(t, verify.IsKStable(res.Matching, inst, k))
		}
	}
}

func TestFind_BackendsAgree(t *testing.T) {
	pb := search.WithVerifyOptions(verify.WithBackend(verify.PseudoBoolean))
	flow := search.WithVerifyOptions(verify.WithBackend(verify.Flow))
	for seed := int64(30); seed <= 37; seed++ {
		inst, err := builder.Random(allModels[seed%4], 4, builder.WithSeed(seed), builder.WithDensity(0.8))
		require.NoError(t, err)
		for k := 2; k <= 4; k++ {
			a, err := search.Exists(inst, k)
			require.NoError(t, err)
			b, err := search.Exists(inst, k, pb)
			require.NoError(t, err)
			assert.Equal(t, a, b, "seed %d k %d", seed, k)
			c, err := search.Exists(inst, k, flow)
			require.NoError(t, err)
			assert.Equal(t, a, c, "seed %d k %d", seed, k)
		}
	}
}

func TestFind_TrustLargeK(t *testing.T) {
	inst := oddCycle(t)
	// With ratio 0.5, k=2 of 3 is large; no candidate passes and the
	// shortcut answers without backtracking.
	res, err := search.Find(inst, 2, search.WithLargeKRatio(0.5), search.WithTrustLargeK())
	assert.ErrorIs(t, err, search.ErrNotFound)
	assert.Equal(t, search.RegimeLargeK, res.Regime)
	assert.Zero(t, res.Nodes)

	res, err = search.Find(inst, 2, search.WithLargeKRatio(0.5))
	assert.ErrorIs(t, err, search.ErrNotFound)
	assert.Positive(t, res.Nodes)
}

func TestStopped(t *testing.T) {
	inst, err := builder.Random(market.Roommates, 6, builder.WithSeed(5))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = search.Count(inst, 2, search.WithContext(ctx))
	assert.ErrorIs(t, err, search.ErrCanceled)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = search.Count(inst, 2, search.WithMaxNodes(1))
	assert.ErrorIs(t, err, search.ErrBudgetExceeded)

	ok, err := search.Exists(oddCycle(t), 2, search.WithMaxNodes(1))
	assert.ErrorIs(t, err, search.ErrBudgetExceeded)
	assert.False(t, ok)
}

func TestGreedy(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		inst, err := builder.Random(allModels[seed%4], 6, builder.WithSeed(seed), builder.WithDensity(0.5))
		require.NoError(t, err)

		g := search.Greedy(inst)
		if g == nil {
			valid, _ := builder.CountStable(inst, 1)
			require.Zero(t, valid, "seed %d", seed)
			require.Empty(t, search.Candidates(inst))

			continue
		}
		require.True(t, market.IsValid(g, inst))
		require.True(t, market.IsMaximal(g, inst))

		seen := map[uint64]bool{}
		for _, c := range search.Candidates(inst) {
			require.True(t, market.IsValid(c, inst))
			require.True(t, market.IsMaximal(c, inst))
			require.False(t, seen[c.Fingerprint()])
			seen[c.Fingerprint()] = true
		}
		if inst.Model().AllowsUnmatched() {
			require.NotEmpty(t, seen)
		}
	}
}

func TestCandidates_MutualThreshold(t *testing.T) {
	// Agent 0 ranks 1 first but sits last on 1's list; the 1/3 threshold
	// steers 0 to 2, who ranks 0 first. Plain greedy pairs 0 with 1.
	inst, err := market.NewRoommates([][]int{{1, 2}, {2, 3, 0}, {0, 1}, {1}})
	require.NoError(t, err)
	cands := search.Candidates(inst)
	require.NotEmpty(t, cands)
	assert.Equal(t, []int{2, 3, 0, 1}, cands[0].Pairs())
	assert.Equal(t, 1, search.Greedy(inst).Partner(0))
}

func TestRegimeFor(t *testing.T) {
	assert.Equal(t, search.RegimeTrivial, search.RegimeFor(10, 1, 0.8))
	assert.Equal(t, search.RegimeBacktrack, search.RegimeFor(10, 7, 0.8))
	assert.Equal(t, search.RegimeLargeK, search.RegimeFor(10, 8, 0.8))
	assert.Equal(t, "large-k", search.RegimeLargeK.String())
	assert.Equal(t, "unknown", search.Regime(7).String())
}

func TestOptions(t *testing.T) {
	o := search.Options{}.Apply(search.WithLargeKRatio(2), search.WithMaxNodes(-1), search.WithLogger(nil))
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, search.DefaultLargeKRatio, o.LargeKRatio)
	assert.Zero(t, o.MaxNodes)
	assert.False(t, o.TrustLargeK)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	_, err := search.Find(oddCycle(t), 2, search.WithLogger(l))
	require.ErrorIs(t, err, search.ErrNotFound)
	assert.Contains(t, buf.String(), "search: backtracking done")
}
