package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/cochonut/chunk"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <chunk>",
	Short: "Inspects a chunk",
	Long:  `Prints every chord key in a chunk with its byte range in the data section.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0], cmd.OutOrStdout())
	},
}

func inspect(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open chunk")
	}
	defer f.Close()

	index, _, err := chunk.ReadIndex(f)
	if err != nil {
		return err
	}
	for _, key := range util.GetKeys(index) {
		fmt.Fprintf(w, "key: %v\n", key)
		fmt.Fprintf(w, "val: %v\n", index[key])
	}
	return nil
}
