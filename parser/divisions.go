package parser

import (
	"strconv"
	"strings"

	"github.com/jsphweid/cochonut/xmltree"
	"github.com/pkg/errors"
)

// FindLargestDivisor returns the largest divisions value declared anywhere
// in a timewise score, or 1 when there is none. It fixes the grid
// resolution: one interval is a 1/(4*largest) note.
func FindLargestDivisor(root *xmltree.Node) (int, error) {
	largest := 1
	for _, d := range root.FindAll("measure/part/attributes/divisions") {
		div, err := parseDivisions(d.Text)
		if err != nil {
			return 0, err
		}
		if div > largest {
			largest = div
		}
	}
	return largest, nil
}

func parseDivisions(text string) (int, error) {
	div, err := parseInt(text)
	if err != nil {
		return 0, errors.Wrap(err, "divisions")
	}
	if div < 1 {
		return 0, errors.Wrapf(ErrMalformed, "divisions must be positive, got %v", div)
	}
	return div, nil
}

// parseInt accepts integers, and decimals with no fractional part since the
// format types several integer fields as decimals.
func parseInt(text string) (int, error) {
	text = strings.TrimSpace(text)
	if v, err := strconv.Atoi(text); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.Wrapf(ErrMalformed, "not an integer: %q", text)
	}
	return int(f), nil
}
