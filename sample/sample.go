package sample

import (
	"github.com/jsphweid/cochonut/midi"
	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Excerpt returns the intervals from offset on, ending before the interval
// whose attacks would go past maxOnsets. The first interval is always kept.
func Excerpt(intervals []model.Interval, offset int, maxOnsets int) ([]model.Interval, error) {
	if offset < 0 || offset >= len(intervals) {
		return nil, errors.Errorf("offset %v outside score of %v intervals", offset, len(intervals))
	}

	end := offset + 1
	numOnsets := intervals[offset].Attacks
	for ; end < len(intervals); end++ {
		numOnsets += intervals[end].Attacks
		if numOnsets > maxOnsets {
			break
		}
	}
	return intervals[offset:end], nil
}

func Create(score *model.Score, offset int, maxOnsets int) (*smf.SMF, error) {
	excerpt, err := Excerpt(score.Intervals, offset, maxOnsets)
	if err != nil {
		return nil, err
	}
	return midi.FromIntervals(excerpt, score.LargestDivisor)
}
