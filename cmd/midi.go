package cmd

import (
	"github.com/jsphweid/cochonut/midi"
	"github.com/jsphweid/cochonut/parser"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi <score> <out.mid>",
	Short: "Renders a score's grid as MIDI",
	Long:  `Quantizes a MusicXML score and writes the grid as a Standard MIDI File, one tick per interval.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderMidi(args[0], args[1])
	},
}

func renderMidi(path string, out string) error {
	score, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	s, err := midi.FromScore(score)
	if err != nil {
		return err
	}
	if err := s.WriteFile(out); err != nil {
		return errors.Wrap(err, "could not write midi file")
	}
	logrus.Infof("Wrote %v intervals to %v", len(score.Intervals), out)
	return nil
}
