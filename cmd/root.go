package cmd

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "cochonut",
	Short: "MusicXML quantizer and chord index",
	Long: `Quantizes MusicXML scores into a grid of equal intervals, each holding the
pitches sounding in it and the number of notes starting in it, and indexes
the chords found there for search.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setUpLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every event of the walk")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
}

func setUpLogging() error {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
		if err != nil {
			return errors.Wrap(err, "could not open log file")
		}
		logrus.SetOutput(f)
	}
	return nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
