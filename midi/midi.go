package midi

import (
	"math"
	"sort"

	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const velocity = 100

func sounding(interval model.Interval) map[uint8]bool {
	res := make(map[uint8]bool)
	for _, p := range interval.Pitches {
		key := p.MidiKey()
		if key >= 0 && key <= 127 {
			res[uint8(key)] = true
		}
	}
	return res
}

func sortedKeys(m map[uint8]bool) []uint8 {
	keys := make([]uint8, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// FromIntervals renders intervals as a single track file, one tick per
// interval. A key sounding in consecutive intervals is held as one note,
// so repeated notes on the same key merge.
func FromIntervals(intervals []model.Interval, largestDivisor int) (*smf.SMF, error) {
	if largestDivisor < 1 || largestDivisor > math.MaxInt16 {
		return nil, errors.Errorf("largest divisor %v can't be used as ticks per quarter", largestDivisor)
	}

	var track smf.Track
	var delta uint32
	prev := make(map[uint8]bool)
	for i := 0; i <= len(intervals); i++ {
		curr := make(map[uint8]bool)
		if i < len(intervals) {
			curr = sounding(intervals[i])
		}
		for _, key := range sortedKeys(prev) {
			if !curr[key] {
				track.Add(delta, midi.NoteOff(0, key))
				delta = 0
			}
		}
		for _, key := range sortedKeys(curr) {
			if !prev[key] {
				track.Add(delta, midi.NoteOn(0, key, velocity))
				delta = 0
			}
		}
		prev = curr
		delta++
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(largestDivisor)
	if err := s.Add(track); err != nil {
		return nil, errors.Wrap(err, "could not add track")
	}
	return s, nil
}

func FromScore(score *model.Score) (*smf.SMF, error) {
	return FromIntervals(score.Intervals, score.LargestDivisor)
}
