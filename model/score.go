package model

// Pitch is a pitch class in [0,11] plus the notated octave.
type Pitch struct {
	PitchClass int `json:"pitch_class" yaml:"pitch_class"`
	Octave     int `json:"octave" yaml:"octave"`
}

// MidiKey returns the MIDI note number, where C4 is 60.
func (p Pitch) MidiKey() int {
	return (p.Octave+1)*12 + p.PitchClass
}

// Interval is one slice of the grid. Pitches is a multiset: the same pitch
// sounding in two parts appears twice.
type Interval struct {
	Attacks int     `json:"attacks" yaml:"attacks"`
	Pitches []Pitch `json:"pitches" yaml:"pitches"`
}

// Part is a declared part of the score along with its walk state.
type Part struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Divisions int    `json:"divisions" yaml:"divisions"`

	// Cursor is the next free interval index in this part.
	Cursor int `json:"cursor" yaml:"cursor"`

	// Onset is the interval of the most recent non-chord note, shared by
	// the chord members that follow it.
	Onset int `json:"-" yaml:"-"`
}

// Score is the quantized form of a MusicXML document. One interval lasts a
// 1/(4*LargestDivisor) note.
type Score struct {
	LargestDivisor int        `json:"largest_divisor" yaml:"largest_divisor"`
	Parts          []Part     `json:"parts" yaml:"parts"`
	Intervals      []Interval `json:"intervals" yaml:"intervals"`
}

// Segment is a run of intervals sharing the same sounding pitches.
type Segment struct {
	Start   int     `json:"start" yaml:"start"`
	Length  int     `json:"length" yaml:"length"`
	Attacks int     `json:"attacks" yaml:"attacks"`
	Pitches []Pitch `json:"pitches" yaml:"pitches"`
}
