package prefs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kstable/prefs"
)

func TestNewStrict_RanksFollowOrder(t *testing.T) {
	l, err := prefs.NewStrict(4, []int{2, 0, 3})
	require.NoError(t, err)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 3, l.Groups())
	assert.True(t, l.Strict())
	assert.Equal(t, 0, l.Rank(2))
	assert.Equal(t, 1, l.Rank(0))
	assert.Equal(t, 2, l.Rank(3))
	assert.Equal(t, prefs.NotAcceptable, l.Rank(1))
	assert.Equal(t, prefs.NotAcceptable, l.Rank(prefs.Unmatched))
	assert.Equal(t, prefs.NotAcceptable, l.Rank(99))
	assert.Equal(t, []int{2, 0, 3}, l.Order())
	assert.Equal(t, "[2 0 3]", l.String())
}

func TestNewStrict_Errors(t *testing.T) {
	_, err := prefs.NewStrict(-1, nil)
	require.ErrorIs(t, err, prefs.ErrBadUniverse)

	_, err = prefs.NewStrict(3, []int{0, 3})
	require.ErrorIs(t, err, prefs.ErrOutOfRange)

	_, err = prefs.NewStrict(3, []int{1, 0, 1})
	require.ErrorIs(t, err, prefs.ErrDuplicateEntry)

	_, err = prefs.NewWeak(3, [][]int{{0}, {}})
	require.ErrorIs(t, err, prefs.ErrEmptyGroup)

	_, err = prefs.NewWeak(3, [][]int{{0, 1}, {1}})
	require.ErrorIs(t, err, prefs.ErrDuplicateEntry)
}

func TestPrefers_UnmatchedSemantics(t *testing.T) {
	l, err := prefs.NewStrict(3, []int{1, 2})
	require.NoError(t, err)

	// Any acceptable target beats being unmatched.
	assert.True(t, l.Prefers(1, prefs.Unmatched))
	assert.True(t, l.Prefers(2, prefs.Unmatched))
	// Unacceptable targets never beat anything.
	assert.False(t, l.Prefers(0, prefs.Unmatched))
	// Unmatched is never preferred, not even to itself.
	assert.False(t, l.Prefers(prefs.Unmatched, 1))
	assert.False(t, l.Prefers(prefs.Unmatched, prefs.Unmatched))
	// Strict order.
	assert.True(t, l.Prefers(1, 2))
	assert.False(t, l.Prefers(2, 1))
	assert.False(t, l.Prefers(1, 1))
	// Comparisons against an unacceptable target are false.
	assert.False(t, l.Prefers(1, 0))
}

func TestNewWeak_TiesAreNotImprovements(t *testing.T) {
	// Goods 4 and 1 are tied at the top, then 0, then {2 3}.
	l, err := prefs.NewWeak(5, [][]int{{4, 1}, {0}, {3, 2}})
	require.NoError(t, err)

	assert.False(t, l.Strict())
	assert.Equal(t, 3, l.Groups())
	assert.Equal(t, 5, l.Len())
	assert.Equal(t, []int{1, 4, 0, 2, 3}, l.Order(), "ties flattened by ascending ID")
	assert.Equal(t, []int{2, 3}, l.Group(2))
	assert.Nil(t, l.Group(3))
	assert.Equal(t, "[{1 4} 0 {2 3}]", l.String())

	assert.True(t, l.Tied(1, 4))
	assert.True(t, l.Tied(3, 2))
	assert.False(t, l.Tied(1, 1))
	assert.False(t, l.Tied(1, 0))

	assert.False(t, l.Prefers(1, 4))
	assert.False(t, l.Prefers(4, 1))
	assert.True(t, l.Prefers(4, 0))
	assert.True(t, l.Prefers(0, 2))
}

func TestAbove(t *testing.T) {
	l, err := prefs.NewWeak(5, [][]int{{4, 1}, {0}, {3, 2}})
	require.NoError(t, err)

	assert.Empty(t, l.Above(4), "nothing strictly above the top group")
	assert.Empty(t, l.Above(1))
	assert.Equal(t, []int{1, 4}, l.Above(0))
	assert.Equal(t, []int{1, 4, 0}, l.Above(2))
	assert.Equal(t, []int{1, 4, 0, 2, 3}, l.Above(prefs.Unmatched))
	assert.Equal(t, 3, l.NumAbove(2))
	assert.Equal(t, 5, l.NumAbove(prefs.Unmatched))
}

func TestAbove_ReturnsCopy(t *testing.T) {
	l, err := prefs.NewStrict(3, []int{2, 0, 1})
	require.NoError(t, err)

	got := l.Above(1)
	got[0] = 1
	_ = append(got[:1], 0)
	assert.Equal(t, []int{2, 0}, l.Above(1))
	assert.Equal(t, 0, l.Rank(2))
	assert.Equal(t, []int{2, 0, 1}, l.Order())
}

func TestZeroValueList(t *testing.T) {
	var l prefs.List
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Groups())
	assert.False(t, l.Acceptable(0))
	assert.Empty(t, l.Above(prefs.Unmatched))
	assert.Equal(t, "[]", l.String())
}
