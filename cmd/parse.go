package cmd

import (
	"io"
	"os"

	"github.com/jsphweid/cochonut/export"
	"github.com/jsphweid/cochonut/parser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	parseFormat string
	parseOutput string
)

func init() {
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, json or yaml")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "write to this file instead of stdout")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <score>",
	Short: "Quantizes a score",
	Long:  `Quantizes a MusicXML score and prints its interval grid.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(parseFormat)
		if err != nil {
			return err
		}
		return parse(args[0], format, parseOutput, cmd.OutOrStdout())
	},
}

// parse writes to output, or to stdout when output is empty.
func parse(path string, format export.Format, output string, stdout io.Writer) error {
	score, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	if output == "" {
		return export.Write(stdout, score, format)
	}
	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "could not create output")
	}
	defer f.Close()
	return export.Write(f, score, format)
}
