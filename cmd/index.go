package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/jsphweid/cochonut/bucket"
	"github.com/jsphweid/cochonut/chunk"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/file"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var dropBuckets bool

func init() {
	indexCmd.Flags().BoolVar(&dropBuckets, "drop-buckets", false, "delete the bucket files once chunks are written")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [maxNum]",
	Short: "Creates index",
	Long:  `Indexes the chords of every score under MEDIA_PATH into INDEX_PATH.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "maxNum")
			}
			maxNum = arg1
		}
		return Index(maxNum)
	},
}

// Index rebuilds the index from scratch. A maxNum of 0 indexes every score.
func Index(maxNum int) error {
	mediaDir := constants.GetMediaDir()
	if mediaDir == "" {
		return errors.New("MEDIA_PATH is not set")
	}
	indexDir := constants.GetIndexDir()

	if err := util.RecreateOutputDir(indexDir); err != nil {
		return err
	}
	paths, err := util.GatherAllScorePaths(mediaDir, maxNum)
	if err != nil {
		return err
	}
	logrus.Infof("Found %v scores under %v", len(paths), mediaDir)

	fileNumMap, err := file.CreateFileNumMap(mediaDir, paths)
	if err != nil {
		return err
	}
	divisors := bucket.ProcessAllScoreFiles(indexDir, mediaDir, fileNumMap)
	chunks, err := chunk.CreateAll(indexDir, constants.PreferredChunkSize)
	if err != nil {
		return err
	}
	logrus.Infof("Indexed %v of %v scores into %v chunks", len(divisors), len(paths), len(chunks))

	if err := util.CreateBinary(filepath.Join(indexDir, constants.AllChunksFilename), chunks); err != nil {
		return err
	}
	if err := util.CreateBinary(filepath.Join(indexDir, constants.FileNumToNameFilename), fileNumMap); err != nil {
		return err
	}
	if err := util.CreateBinary(filepath.Join(indexDir, constants.FileNumToDivisorFilename), divisors); err != nil {
		return err
	}
	if dropBuckets {
		return bucket.DeleteAll(indexDir)
	}
	return nil
}
