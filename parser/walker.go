package parser

import (
	"github.com/jsphweid/cochonut/grid"
	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/pitch"
	"github.com/jsphweid/cochonut/xmltree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type noteKind int

const (
	kindNone noteKind = iota
	kindPitch
	kindUnpitched
	kindRest
)

type note struct {
	isChord bool
	kind    noteKind
	step    string
	octave  int
	alter   int

	// grace notes carry no duration
	duration    int
	hasDuration bool
}

func readNote(elem *xmltree.Node) (note, error) {
	n := note{isChord: elem.Has("chord")}

	if p := elem.Child("pitch"); p != nil {
		n.kind = kindPitch
		step := p.Child("step")
		octave := p.Child("octave")
		if step == nil || octave == nil {
			return n, errors.Wrap(ErrMalformed, "pitch needs step and octave")
		}
		n.step = step.Text
		var err error
		if n.octave, err = parseInt(octave.Text); err != nil {
			return n, errors.Wrap(err, "octave")
		}
		if alter := p.Child("alter"); alter != nil {
			if n.alter, err = parseInt(alter.Text); err != nil {
				return n, errors.Wrap(err, "alter")
			}
		}
	}
	// a note holds exactly one of these, rest wins if a file has more
	if elem.Has("unpitched") {
		n.kind = kindUnpitched
	}
	if elem.Has("rest") {
		n.kind = kindRest
	}
	if n.kind == kindNone {
		return n, errors.Wrap(ErrMalformed, "note without pitch, unpitched or rest")
	}

	if d := elem.Child("duration"); d != nil {
		duration, err := readDuration(d)
		if err != nil {
			return n, err
		}
		n.duration = duration
		n.hasDuration = true
	}
	return n, nil
}

func readDuration(d *xmltree.Node) (int, error) {
	duration, err := parseInt(d.Text)
	if err != nil {
		return 0, errors.Wrap(err, "duration")
	}
	if duration < 0 {
		return 0, errors.Wrapf(ErrMalformed, "negative duration %v", duration)
	}
	return duration, nil
}

type walker struct {
	reg     *Registry
	grid    *grid.Grid
	largest int
}

// Walk runs through a timewise score measure by measure, part by part, and
// writes every note into one grid shared by all parts. Each part keeps its
// own cursor; nothing reconciles cursors between parts, so the parts are
// assumed to stay in step on their own.
func Walk(root *xmltree.Node, reg *Registry, largest int) (*grid.Grid, error) {
	w := &walker{reg: reg, grid: grid.New(), largest: largest}
	for _, measure := range root.FindAll("measure") {
		number, _ := measure.Attr("number")
		for _, elem := range measure.FindAll("part") {
			if err := w.walkPart(elem); err != nil {
				return nil, errors.Wrapf(err, "measure %v", number)
			}
		}
	}
	return w.grid, nil
}

func (w *walker) walkPart(elem *xmltree.Node) error {
	id, ok := elem.Attr("id")
	if !ok {
		return errors.Wrap(ErrMalformed, "part without id")
	}
	part, err := w.reg.Lookup(id)
	if err != nil {
		return err
	}
	logrus.Debugf("part %v: next interval %v", id, part.Cursor)

	// the first attributes element applies to the whole measure, later ones
	// from where they appear
	first := elem.Child("attributes")
	if err := w.applyAttributes(id, first); err != nil {
		return err
	}

	next := part.Cursor
	onset := part.Onset
	for _, child := range elem.Children {
		switch child.Tag {
		case "attributes":
			if child == first {
				continue
			}
			if err := w.applyAttributes(id, child); err != nil {
				return err
			}

		case "note":
			n, err := readNote(child)
			if err != nil {
				return errors.Wrapf(err, "part %v", id)
			}
			length, err := w.length(id, n.duration)
			if err != nil {
				return err
			}

			switch n.kind {
			case kindRest:
				if err := w.grid.StoreRest(next, length); err != nil {
					return errors.Wrapf(err, "part %v", id)
				}
				logrus.Debugf("part %v: rest from %v to %v", id, next, next+length-1)
				next += length

			case kindPitch:
				if !n.isChord {
					onset = next
					next = onset + length
				}
				pc, err := pitch.Resolve(n.step, n.alter)
				if err != nil {
					return errors.Wrapf(err, "part %v", id)
				}
				// TODO: place grace notes by taking time from the note they lead into
				if n.hasDuration && n.duration > 0 {
					p := model.Pitch{PitchClass: pc, Octave: n.octave}
					store := w.grid.StorePitch
					if n.isChord {
						store = w.grid.StoreChordPitch
					}
					if err := store(p, onset, length); err != nil {
						return errors.Wrapf(err, "part %v", id)
					}
					logrus.Debugf("part %v: %v%v from %v to %v", id, pitch.Name(pc), n.octave, onset, onset+length-1)
				}

			case kindUnpitched:
				// neither stored nor timed: the cursor stays put
				logrus.Debugf("part %v: skipping unpitched note at %v", id, next)
			}

		case "forward":
			length, err := w.eventLength(id, child)
			if err != nil {
				return err
			}
			logrus.Debugf("part %v: forward %v", id, length)
			next += length

		case "backup":
			length, err := w.eventLength(id, child)
			if err != nil {
				return err
			}
			logrus.Debugf("part %v: backup %v", id, length)
			next -= length
			if next < 0 {
				return errors.Wrapf(grid.ErrNegativeCursor, "part %v: backup of %v intervals reaches %v", id, length, next)
			}
		}
	}

	part.Cursor = next
	part.Onset = onset
	return nil
}

func (w *walker) applyAttributes(id string, attributes *xmltree.Node) error {
	if attributes == nil {
		return nil
	}
	d := attributes.Child("divisions")
	if d == nil {
		return nil
	}
	div, err := parseDivisions(d.Text)
	if err != nil {
		return errors.Wrapf(err, "part %v", id)
	}
	logrus.Debugf("part %v: divisions %v", id, div)
	return w.reg.SetDivisions(id, div)
}

// length converts a duration in the part's divisions to a number of grid
// intervals, truncating any remainder.
func (w *walker) length(id string, duration int) (int, error) {
	div, err := w.reg.Divisions(id)
	if err != nil {
		return 0, err
	}
	return duration * w.largest / div, nil
}

// eventLength reads the mandatory duration of a forward or backup.
func (w *walker) eventLength(id string, elem *xmltree.Node) (int, error) {
	d := elem.Child("duration")
	if d == nil {
		return 0, errors.Wrapf(ErrMalformed, "part %v: %v without duration", id, elem.Tag)
	}
	duration, err := readDuration(d)
	if err != nil {
		return 0, errors.Wrapf(err, "part %v", id)
	}
	return w.length(id, duration)
}
