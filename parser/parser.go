// Package parser quantizes a MusicXML score into a grid of equal intervals,
// each holding the pitches sounding in it and the number of notes that
// start in it.
package parser

import (
	"io"
	"os"

	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/timewise"
	"github.com/jsphweid/cochonut/xmltree"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Parse quantizes a parsed MusicXML document. Partwise scores are converted
// to timewise first. Nothing is returned on error.
func Parse(root *xmltree.Node) (*model.Score, error) {
	switch root.Tag {
	case timewise.TimewiseTag:
		logrus.Debug("found timewise score")
	case timewise.PartwiseTag:
		logrus.Debug("found partwise score, converting to timewise")
		converted, err := timewise.Convert(root)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformed, "partwise conversion: %v", err)
		}
		root = converted
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "root element %v", root.Tag)
	}

	reg, err := NewRegistry(root)
	if err != nil {
		return nil, err
	}

	largest, err := FindLargestDivisor(root)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("shortest note is 1/%v", 4*largest)

	g, err := Walk(root, reg, largest)
	if err != nil {
		return nil, err
	}

	return &model.Score{
		LargestDivisor: largest,
		Parts:          reg.Parts(),
		Intervals:      g.Intervals(),
	}, nil
}

func ParseReader(r io.Reader) (*model.Score, error) {
	root, err := xmltree.Parse(r)
	if err != nil {
		return nil, errors.Wrap(ErrUnsupportedFormat, err.Error())
	}
	return Parse(root)
}

func ParseFile(path string) (*model.Score, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open score")
	}
	defer f.Close()

	score, err := ParseReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %v", path)
	}
	return score, nil
}
