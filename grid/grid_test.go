package grid

import (
	"testing"

	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

var c4 = model.Pitch{PitchClass: 0, Octave: 4}
var e4 = model.Pitch{PitchClass: 4, Octave: 4}

func TestEnsureLengthNeverShrinks(t *testing.T) {
	g := New()
	g.EnsureLength(3)
	g.EnsureLength(3)
	g.EnsureLength(1)

	assert := assert.New(t)
	assert.Equal(3, g.Len())
	for _, interval := range g.Intervals() {
		assert.Equal(model.Interval{}, interval)
	}
}

func TestStoreRestOnlyExtends(t *testing.T) {
	g := New()
	assert.NoError(t, g.StoreRest(2, 3))

	assert := assert.New(t)
	assert.Equal(5, g.Len())
	for _, interval := range g.Intervals() {
		assert.Equal(0, interval.Attacks)
		assert.Empty(interval.Pitches)
	}
}

func TestStorePitchSpansRange(t *testing.T) {
	g := New()
	assert.NoError(t, g.StorePitch(c4, 1, 3))

	assert := assert.New(t)
	assert.Equal(4, g.Len())
	assert.Empty(g.At(0).Pitches)
	for i := 1; i < 4; i++ {
		assert.Equal([]model.Pitch{c4}, g.At(i).Pitches)
	}
	assert.Equal(1, g.At(1).Attacks)
	assert.Equal(0, g.At(2).Attacks)
	assert.Equal(0, g.At(3).Attacks)
}

func TestStorePitchKeepsMultiset(t *testing.T) {
	g := New()
	assert.NoError(t, g.StorePitch(c4, 0, 2))
	assert.NoError(t, g.StorePitch(c4, 1, 1))
	assert.NoError(t, g.StorePitch(e4, 1, 1))

	assert := assert.New(t)
	assert.Equal([]model.Pitch{c4, c4, e4}, g.At(1).Pitches)
	assert.Equal(2, g.At(1).Attacks)
	assert.Equal(1, g.At(0).Attacks)
}

func TestChordPitchDoesNotAttack(t *testing.T) {
	g := New()
	assert.NoError(t, g.StorePitch(c4, 0, 1))
	assert.NoError(t, g.StoreChordPitch(e4, 0, 2))

	assert := assert.New(t)
	assert.Equal(model.Interval{Attacks: 1, Pitches: []model.Pitch{c4, e4}}, g.At(0))
	assert.Equal(model.Interval{Attacks: 0, Pitches: []model.Pitch{e4}}, g.At(1))
}

func TestZeroLengthStoresNothing(t *testing.T) {
	g := New()
	assert.NoError(t, g.StorePitch(c4, 2, 0))

	assert := assert.New(t)
	assert.Equal(2, g.Len())
	assert.Equal(0, g.At(0).Attacks)
	assert.Equal(0, g.At(1).Attacks)
}

func TestNegativeStartFails(t *testing.T) {
	g := New()
	assert.True(t, errors.Is(g.StorePitch(c4, -1, 2), ErrNegativeCursor))
	assert.True(t, errors.Is(g.StoreRest(-3, 1), ErrNegativeCursor))
	assert.Equal(t, 0, g.Len())
}
