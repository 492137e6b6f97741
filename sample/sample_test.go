package sample

import (
	"testing"

	"github.com/jsphweid/cochonut/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intervals(attacks ...int) []model.Interval {
	var res []model.Interval
	for _, a := range attacks {
		res = append(res, model.Interval{Attacks: a, Pitches: []model.Pitch{{PitchClass: 0, Octave: 4}}})
	}
	return res
}

func TestExcerptStopsAtOnsetLimit(t *testing.T) {
	all := intervals(3, 0, 2, 1, 4, 1)

	got, err := Excerpt(all, 0, 6)
	require.NoError(t, err)
	assert.Len(t, got, 4)

	got, err = Excerpt(all, 2, 3)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = Excerpt(all, 4, 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = Excerpt(all, 1, 100)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestExcerptRejectsBadOffset(t *testing.T) {
	_, err := Excerpt(intervals(1), 1, 10)
	assert.Error(t, err)
	_, err = Excerpt(intervals(1), -1, 10)
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	score := &model.Score{LargestDivisor: 2, Intervals: intervals(1, 1, 1)}
	s, err := Create(score, 1, 10)
	require.NoError(t, err)
	assert.Len(t, s.Tracks, 1)
}
