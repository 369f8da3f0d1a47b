package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/kstable/improve"
	"github.com/katalvlaran/kstable/internal/builder"
	"github.com/katalvlaran/kstable/market"
	"github.com/katalvlaran/kstable/verify"
)

var allModels = []market.Model{
	market.HouseAllocation, market.PartialHouseAllocation, market.Marriage, market.Roommates,
}

var backends = []verify.Backend{verify.Combinatorial, verify.PseudoBoolean, verify.Flow}

// RotationSuite checks the three-agent rotation on both backends.
type RotationSuite struct {
	suite.Suite

	backend verify.Backend
	inst    *market.Instance
	id      *market.Matching
}

func (s *RotationSuite) SetupTest() {
	s.inst = builder.Rotation3()
	var err error
	s.id, err = market.FromPairs(s.inst, []int{0, 1, 2})
	s.Require().NoError(err)
}

func (s *RotationSuite) TestThresholds() {
	opt := verify.WithBackend(s.backend)
	s.False(verify.IsKStable(s.id, s.inst, 3, opt))
	s.False(verify.IsKStable(s.id, s.inst, 2, opt))
	s.True(verify.IsKStable(s.id, s.inst, 1, opt))
	s.False(verify.IsKStable(s.id, s.inst, 0, opt))
	s.False(verify.IsKStable(s.id, s.inst, 4, opt))
}

func (s *RotationSuite) TestReportWitness() {
	r, err := verify.Check(s.id, s.inst, 2, verify.WithBackend(s.backend))
	s.Require().NoError(err)
	s.False(r.Stable)
	s.Equal(3, r.MaxCoalition)
	s.Equal([]int{0, 1, 2}, r.Coalition)
	s.Require().NotNil(r.Alternative)
	s.True(market.IsValid(r.Alternative, s.inst))
	if s.backend == verify.Combinatorial {
		s.Equal([]int{1, 2, 0}, r.Alternative.Pairs())
	}
	s.Equal(3, market.CountImproved(s.inst, s.id, r.Alternative))
}

func (s *RotationSuite) TestIdempotent() {
	before := s.id.Pairs()
	for i := 0; i < 3; i++ {
		s.False(verify.IsKStable(s.id, s.inst, 3, verify.WithBackend(s.backend)))
	}
	s.Equal(before, s.id.Pairs())
}

func (s *RotationSuite) TestTopChoicesAreStable() {
	top, err := market.FromPairs(s.inst, []int{1, 2, 0})
	s.Require().NoError(err)
	r, err := verify.Check(top, s.inst, 1, verify.WithBackend(s.backend))
	s.Require().NoError(err)
	s.True(r.Stable)
	s.Zero(r.MaxCoalition)
	s.Nil(r.Alternative)
	s.True(verify.IsKStable(top, s.inst, 1, verify.WithBackend(s.backend)))
}

func TestRotationSuite(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			suite.Run(t, &RotationSuite{backend: b})
		})
	}
}

func TestCheck_Errors(t *testing.T) {
	inst := builder.Rotation3()
	m := market.NewMatching(inst)

	_, err := verify.Check(m, inst, 0)
	assert.ErrorIs(t, err, market.ErrKOutOfRange)
	_, err = verify.Check(m, inst, 4)
	assert.ErrorIs(t, err, market.ErrInvalidArgument)

	bad, err := market.FromPairs(inst, []int{0, 0, 1})
	require.NoError(t, err)
	_, err = verify.Check(bad, inst, 2)
	assert.ErrorIs(t, err, market.ErrInfeasibleMatching)
	assert.False(t, verify.IsKStable(bad, inst, 2))
	assert.False(t, verify.IsKStable(bad, inst, 1))
	assert.False(t, verify.IsKStable(nil, inst, 1))
	assert.False(t, verify.IsKStable(m, nil, 1))
}

func TestPBBudget(t *testing.T) {
	inst := builder.Rotation3()
	m := market.NewMatching(inst)
	_, err := verify.MaxCoalition(m, inst,
		verify.WithBackend(verify.PseudoBoolean), verify.WithMaxPBVariables(3))
	assert.ErrorIs(t, err, market.ErrAllocationFailure)
	// Fails closed.
	assert.False(t, verify.IsKStable(m, inst, 2,
		verify.WithBackend(verify.PseudoBoolean), verify.WithMaxPBVariables(3)))
}

func TestMarriage_MutualImprovementCountsTwice(t *testing.T) {
	// Men 0,1; women 2,3. Everyone prefers the "crossed" partner.
	inst, err := market.NewMarriage(2, [][]int{{3, 2}, {2, 3}, {1, 0}, {0, 1}})
	require.NoError(t, err)
	m, err := market.FromPairs(inst, []int{2, 3, 0, 1})
	require.NoError(t, err)
	for _, b := range backends {
		r, err := verify.Check(m, inst, 4, verify.WithBackend(b))
		require.NoError(t, err)
		assert.Equal(t, 4, r.MaxCoalition, b.String())
		assert.False(t, r.Stable)
	}
}

func TestMarriage_WitnessIsCompleted(t *testing.T) {
	// Man 0 and woman 3 prefer each other to their partners; the other two
	// are left to marry each other.
	inst, err := market.NewMarriage(2, [][]int{{3, 2}, {3, 2}, {0, 1}, {0, 1}})
	require.NoError(t, err)
	m, err := market.FromPairs(inst, []int{2, 3, 0, 1})
	require.NoError(t, err)
	for _, b := range backends {
		r, err := verify.Check(m, inst, 2, verify.WithBackend(b))
		require.NoError(t, err)
		assert.False(t, r.Stable, b.String())
		assert.Equal(t, []int{0, 3}, r.Coalition, b.String())
		assert.True(t, market.IsValid(r.Alternative, inst), b.String())
		assert.Equal(t, []int{3, 2, 1, 0}, r.Alternative.Pairs(), b.String())
		assert.Equal(t, 2, market.CountImproved(inst, m, r.Alternative))
	}
}

func TestRoommates_OnePairTwoImprovers(t *testing.T) {
	// 0 and 1 prefer each other; 2 and 3 only accept 0 and 1 respectively.
	inst, err := market.NewRoommates([][]int{{1, 2}, {0, 3}, {0}, {1}})
	require.NoError(t, err)
	m, err := market.FromPairs(inst, []int{2, 3, 0, 1})
	require.NoError(t, err)
	assert.False(t, verify.IsKStable(m, inst, 2))
	assert.True(t, verify.IsKStable(m, inst, 3))
	r, err := verify.Check(m, inst, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, r.Coalition)
}

// TestAgainstBruteForce compares both backends with exhaustive enumeration
// over small random instances and every valid matching.
func TestAgainstBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 24; seed++ {
		model := allModels[seed%4]
		n := 3 + int(seed%3)
		inst, err := builder.Random(model, n, builder.WithSeed(seed), builder.WithDensity(0.75))
		require.NoError(t, err)

		checked := 0
		builder.Enumerate(inst, func(m *market.Matching) bool {
			checked++
			if checked%3 != 0 {
				return true
			}
			want := builder.MaxCoalition(m, inst)
			for _, b := range backends {
				r, err := verify.MaxCoalition(m, inst, verify.WithBackend(b))
				require.NoError(t, err)
				require.Equal(t, want, r.MaxCoalition, "seed %d %s %s %v", seed, model, b, m)
				if want > 0 {
					require.NoError(t, market.ValidatePartial(r.Alternative, inst))
					require.Equal(t, want, market.CountImproved(inst, m, r.Alternative))
				}
				for k := 1; k <= n; k++ {
					require.Equal(t, k == 1 || want < k, verify.IsKStable(m, inst, k, verify.WithBackend(b)),
						"seed %d k %d", seed, k)
				}
			}

			return true
		})
	}
}

func TestMonotoneInK(t *testing.T) {
	inst, err := builder.Random(market.Roommates, 6, builder.WithSeed(9))
	require.NoError(t, err)
	builder.Enumerate(inst, func(m *market.Matching) bool {
		stable := false
		for k := 2; k <= 6; k++ {
			now := verify.IsKStable(m, inst, k)
			if stable {
				require.True(t, now, "k=%d", k)
			}
			stable = now
		}

		return true
	})
}

func TestReaches(t *testing.T) {
	inst := builder.Rotation3()
	id, err := market.FromPairs(inst, []int{0, 1, 2})
	require.NoError(t, err)

	full := improve.Build(id, inst)
	assert.True(t, verify.Reaches(full, 3))
	assert.True(t, verify.Reaches(full, 0))

	// Only agents 0 and 1 decided: at most two of them can improve.
	part := improve.BuildPartial(id, inst, func(i int) bool { return i < 2 })
	assert.True(t, verify.Reaches(part, 2))
	assert.False(t, verify.Reaches(part, 3))
}

func TestOptions(t *testing.T) {
	o := verify.DefaultOptions()
	assert.Equal(t, verify.Combinatorial, o.Backend)
	assert.Equal(t, verify.DefaultMaxPBVariables, o.MaxPBVariables)

	o = verify.Options{}.Apply(verify.WithMaxPBVariables(-5), verify.WithLogger(nil))
	assert.Equal(t, verify.DefaultMaxPBVariables, o.MaxPBVariables)
	assert.NotNil(t, o.Logger)
	assert.Equal(t, "pseudo-boolean", verify.PseudoBoolean.String())
	assert.Equal(t, "flow", verify.Flow.String())
	assert.Equal(t, "unknown", verify.Backend(9).String())
}
