package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/pitch"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", errors.Errorf("unknown format %q, expected text, json or yaml", s)
}

func PitchName(p model.Pitch) string {
	return fmt.Sprintf("%v%v", pitch.Name(p.PitchClass), p.Octave)
}

func writeText(w io.Writer, score *model.Score) error {
	if _, err := fmt.Fprintf(w, "largest divisor: %v (one interval is a 1/%v note)\n", score.LargestDivisor, 4*score.LargestDivisor); err != nil {
		return err
	}
	for _, p := range score.Parts {
		if _, err := fmt.Fprintf(w, "part %v: %v\n", p.ID, p.Name); err != nil {
			return err
		}
	}
	for i, interval := range score.Intervals {
		names := make([]string, 0, len(interval.Pitches))
		for _, p := range interval.Pitches {
			names = append(names, PitchName(p))
		}
		if _, err := fmt.Fprintf(w, "%6d  attacks %d  %v\n", i, interval.Attacks, strings.Join(names, " ")); err != nil {
			return err
		}
	}
	return nil
}

func Write(w io.Writer, score *model.Score, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(score)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(score); err != nil {
			return err
		}
		return enc.Close()
	case Text:
		return writeText(w, score)
	}
	return errors.Errorf("unknown format %q", format)
}
