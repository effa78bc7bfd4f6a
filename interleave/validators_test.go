package interleave_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/faro/interleave"
)

func TestInterleaveRange_Bounds(t *testing.T) {
	cases := []struct {
		name     string
		from, to int
	}{
		{"negative from", -1, 3},
		{"from after to", 4, 3},
		{"to past end", 2, 11},
		{"both past end", 11, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := iota0(10)
			err := interleave.InterleaveRange(interleave.Sequence, v, tc.from, tc.to, interleave.In)
			require.ErrorIs(t, err, interleave.ErrOutOfRange)

			var be *interleave.BoundsError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, "v", be.Arg)
			assert.Equal(t, tc.from, be.From)
			assert.Equal(t, tc.to, be.To)
			assert.Equal(t, 10, be.Len)
			assert.Equal(t, iota0(10), v, "view mutated on error")
		})
	}
}

func TestInterleaveRange_EmptyWindowAtEnd(t *testing.T) {
	v := iota0(4)
	require.NoError(t, interleave.InterleaveRange(interleave.Recursive, v, 4, 4, interleave.Out))
	assert.Equal(t, iota0(4), v)
}

func TestInterleavePairRange_Bounds(t *testing.T) {
	a, b := iota0(6), iotaFrom(10, 6)

	err := interleave.InterleavePairRange(interleave.Josephus, a, 0, 3, b, 2, 7, interleave.In)
	require.ErrorIs(t, err, interleave.ErrOutOfRange)
	var be *interleave.BoundsError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "b", be.Arg)

	err = interleave.InterleavePairRange(interleave.Josephus, a, 5, 3, b, 0, 3, interleave.In)
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "a", be.Arg)

	assert.Equal(t, iota0(6), a)
	assert.Equal(t, iotaFrom(10, 6), b)
}

func TestInterleave_UnknownKindAndShuffle(t *testing.T) {
	v := iota0(8)
	err := interleave.Interleave(interleave.Kind(42), v, interleave.In)
	assert.ErrorIs(t, err, interleave.ErrUnknownKind)

	err = interleave.InterleaveRange(interleave.Permutation, v, 0, 8, interleave.Shuffle(7))
	assert.ErrorIs(t, err, interleave.ErrUnknownShuffle)

	err = interleave.InterleavePair(interleave.Kind(6), v[:4], v[4:], interleave.Out)
	assert.ErrorIs(t, err, interleave.ErrUnknownKind)

	// Kind and shuffle are checked before the windows.
	err = interleave.InterleavePairRange(interleave.Kind(9), v, -1, 0, v, 0, 99, interleave.In)
	assert.ErrorIs(t, err, interleave.ErrUnknownKind)
	assert.NotErrorIs(t, err, interleave.ErrOutOfRange)

	assert.Equal(t, iota0(8), v)
}

func TestInterleavePair_Overlap(t *testing.T) {
	v := iota0(10)
	cases := []struct {
		name string
		a, b []int
	}{
		{"same slice", v, v},
		{"b inside a", v[0:8], v[2:4]},
		{"a inside b", v[3:5], v[0:10]},
		{"crossing", v[0:6], v[4:9]},
		{"crossing reversed", v[5:9], v[1:6]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := interleave.InterleavePair(interleave.ShufflePrime, tc.a, tc.b, interleave.In)
			assert.ErrorIs(t, err, interleave.ErrOverlap)
			assert.Equal(t, iota0(10), v)
		})
	}
}

func TestInterleavePairRange_Overlap(t *testing.T) {
	v := iota0(10)
	err := interleave.InterleavePairRange(interleave.Sequence, v, 0, 5, v, 4, 9, interleave.Out)
	assert.ErrorIs(t, err, interleave.ErrOverlap)
	assert.Equal(t, iota0(10), v)
}

func TestValidateDisjoint(t *testing.T) {
	v := iota0(10)
	other := iota0(10)

	assert.NoError(t, interleave.ValidateDisjoint(v[0:5], v[5:10]))
	assert.NoError(t, interleave.ValidateDisjoint(v[6:10], v[0:6]))
	assert.NoError(t, interleave.ValidateDisjoint(v, other))
	assert.NoError(t, interleave.ValidateDisjoint(v[3:3], v))
	assert.NoError(t, interleave.ValidateDisjoint[int](nil, v))

	empty := make([]struct{}, 4)
	assert.NoError(t, interleave.ValidateDisjoint(empty, empty))

	assert.ErrorIs(t, interleave.ValidateDisjoint(v[4:5], v[4:5]), interleave.ErrOverlap)
}

func TestValidateRange(t *testing.T) {
	assert.NoError(t, interleave.ValidateRange("v", 5, 0, 5))
	assert.NoError(t, interleave.ValidateRange("v", 5, 5, 5))
	assert.NoError(t, interleave.ValidateRange("v", 0, 0, 0))

	err := interleave.ValidateRange("a", 5, 1, 6)
	assert.ErrorIs(t, err, interleave.ErrOutOfRange)
	assert.EqualError(t, err, "interleave: view a[1:6] out of range for length 5")
}
