package parser

import (
	"github.com/pkg/errors"
)

var (
	ErrUnsupportedFormat = errors.New("not a MusicXML score")
	ErrMissingDivisions  = errors.New("divisions not set for part")
	ErrUnknownPart       = errors.New("part not declared in part-list")
	ErrMalformed         = errors.New("malformed score")
)
