package grid

import (
	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
)

var ErrNegativeCursor = errors.New("negative interval index")

// Grid is the shared timeline every part writes into. It only grows.
type Grid struct {
	intervals []model.Interval
}

func New() *Grid {
	return &Grid{}
}

func (g *Grid) Len() int {
	return len(g.intervals)
}

// At returns the interval at index i. It panics when i is out of range, like
// a slice index would.
func (g *Grid) At(i int) model.Interval {
	return g.intervals[i]
}

func (g *Grid) Intervals() []model.Interval {
	return g.intervals
}

// EnsureLength appends empty intervals until the grid holds n of them.
func (g *Grid) EnsureLength(n int) {
	for len(g.intervals) < n {
		g.intervals = append(g.intervals, model.Interval{})
	}
}

// StoreRest makes room for a rest. A rest takes time but leaves nothing
// in the intervals it covers.
func (g *Grid) StoreRest(start, length int) error {
	if err := checkRange(start, length); err != nil {
		return err
	}
	g.EnsureLength(start + length)
	return nil
}

// StorePitch adds p to every interval in [start, start+length) and counts
// one attack at start.
func (g *Grid) StorePitch(p model.Pitch, start, length int) error {
	return g.store(p, start, length, true)
}

// StoreChordPitch is StorePitch for a chord member: the chord's first note
// already counted the attack.
func (g *Grid) StoreChordPitch(p model.Pitch, start, length int) error {
	return g.store(p, start, length, false)
}

func (g *Grid) store(p model.Pitch, start, length int, attack bool) error {
	if err := checkRange(start, length); err != nil {
		return err
	}
	g.EnsureLength(start + length)
	if length == 0 {
		return nil
	}
	for i := start; i < start+length; i++ {
		g.intervals[i].Pitches = append(g.intervals[i].Pitches, p)
	}
	if attack {
		g.intervals[start].Attacks++
	}
	return nil
}

func checkRange(start, length int) error {
	if start < 0 {
		return errors.Wrapf(ErrNegativeCursor, "start %v", start)
	}
	if length < 0 {
		return errors.Errorf("negative length %v at %v", length, start)
	}
	return nil
}
