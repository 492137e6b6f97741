// Package segment folds a grid into minimal segments: runs of intervals
// where nothing starts and nothing stops.
package segment

import (
	"sort"

	"github.com/jsphweid/cochonut/model"
)

// FromIntervals starts a new segment at every interval that has an attack
// or sounds a different set of pitches than the one before it. Segment
// pitches are deduplicated and sorted from low to high.
func FromIntervals(intervals []model.Interval) []model.Segment {
	var res []model.Segment
	for i, interval := range intervals {
		pitches := PitchSet(interval.Pitches)
		if len(res) > 0 && interval.Attacks == 0 && samePitches(res[len(res)-1].Pitches, pitches) {
			res[len(res)-1].Length++
			continue
		}
		res = append(res, model.Segment{
			Start:   i,
			Length:  1,
			Attacks: interval.Attacks,
			Pitches: pitches,
		})
	}
	return res
}

// PitchSet returns the distinct pitches of a multiset, lowest first.
func PitchSet(pitches []model.Pitch) []model.Pitch {
	res := make([]model.Pitch, 0, len(pitches))
	seen := make(map[model.Pitch]bool)
	for _, p := range pitches {
		if !seen[p] {
			seen[p] = true
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Octave != res[j].Octave {
			return res[i].Octave < res[j].Octave
		}
		return res[i].PitchClass < res[j].PitchClass
	})
	return res
}

func samePitches(a, b []model.Pitch) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
