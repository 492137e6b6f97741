package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/cochonut/chord"
	"github.com/jsphweid/cochonut/export"
	"github.com/jsphweid/cochonut/parser"
	"github.com/jsphweid/cochonut/segment"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(segmentsCmd)
}

var segmentsCmd = &cobra.Command{
	Use:   "segments <score>",
	Short: "Prints minimal segments",
	Long:  `Prints the runs of intervals where no note starts or stops, with the chord key of each.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSegments(args[0], cmd.OutOrStdout())
	},
}

func printSegments(path string, w io.Writer) error {
	score, err := parser.ParseFile(path)
	if err != nil {
		return err
	}
	for _, s := range segment.FromIntervals(score.Intervals) {
		var names []string
		var notes []uint8
		for _, p := range s.Pitches {
			names = append(names, export.PitchName(p))
			// keys outside the midi range stay out of the chord key, as when indexing
			if key := p.MidiKey(); key >= 0 && key <= 127 {
				notes = append(notes, uint8(key))
			}
		}
		fmt.Fprintf(w, "%6d +%-4d attacks %d  %-16v %v\n", s.Start, s.Length, s.Attacks, chord.CreateChordKey(notes), strings.Join(names, " "))
	}
	return nil
}
