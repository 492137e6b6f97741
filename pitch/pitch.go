package pitch

import (
	"github.com/pkg/errors"
)

var ErrUnknownStep = errors.New("unknown pitch step")

var stepClasses = map[string]int{
	"C": 0,
	"D": 2,
	"E": 4,
	"F": 5,
	"G": 7,
	"A": 9,
	"B": 11,
}

var names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Resolve maps a notated step and a semitone alteration to a pitch class
// in [0,11].
func Resolve(step string, alter int) (int, error) {
	base, ok := stepClasses[step]
	if !ok {
		return 0, errors.Wrapf(ErrUnknownStep, "step %q", step)
	}
	return ((base+alter)%12 + 12) % 12, nil
}

// Name returns a sharp-spelled name for a pitch class.
func Name(pitchClass int) string {
	return names[((pitchClass%12)+12)%12]
}
