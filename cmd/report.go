package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/jsphweid/cochonut/bucket"
	"github.com/jsphweid/cochonut/chunk"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Compares the buckets and chunks in INDEX_PATH.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(constants.GetIndexDir(), cmd.OutOrStdout())
	},
}

var chunkName = regexp.MustCompile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")

type bucketsReport struct {
	numChords int64
	numFiles  int64
	numBytes  int64
}

type chunksReport struct {
	avgIndexPercent float32
	indexPercents   []float32
	chordsInIndexes []int64
	numFiles        int64
	numChords       int64
	totalBytes      int64
	dataBytes       int64
}

func analyzeBuckets(indexDir string) (bucketsReport, error) {
	var report bucketsReport
	paths, err := bucket.GetBucketPaths(indexDir)
	if err != nil {
		return report, err
	}
	for _, path := range paths {
		stats, err := os.Stat(path)
		if err != nil {
			return report, errors.Wrap(err, "could not get bucket stats")
		}
		report.numFiles += 1
		report.numBytes += stats.Size()
		report.numChords += stats.Size() / constants.ChordSize
	}
	return report, nil
}

func analyzeChunk(path string, report *chunksReport) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "could not open chunk")
	}
	defer f.Close()

	index, indexLength, err := chunk.ReadIndex(f)
	if err != nil {
		return errors.Wrap(err, path)
	}

	var chordsInIndex int64
	for _, v := range index {
		chordsInIndex += int64(v.End-v.Start) / constants.ChunkEntrySize
	}
	report.chordsInIndexes = append(report.chordsInIndexes, chordsInIndex)

	stats, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "could not get chunk stats")
	}
	headerBytes := int64(indexLength + 4)
	report.indexPercents = append(report.indexPercents, float32(headerBytes)/float32(stats.Size()))
	report.totalBytes += stats.Size()

	dataBytes := stats.Size() - headerBytes
	report.dataBytes += dataBytes
	report.numChords += dataBytes / constants.ChunkEntrySize
	report.numFiles += 1
	return nil
}

func analyzeChunks(indexDir string) (chunksReport, error) {
	var report chunksReport
	files, err := os.ReadDir(indexDir)
	if err != nil {
		return report, errors.Wrap(err, "could not read index dir")
	}
	for _, file := range files {
		if !chunkName.MatchString(file.Name()) {
			continue
		}
		if err := analyzeChunk(filepath.Join(indexDir, file.Name()), &report); err != nil {
			return report, err
		}
	}
	if report.totalBytes > 0 {
		report.avgIndexPercent = float32(report.totalBytes-report.dataBytes) / float32(report.totalBytes)
	}
	return report, nil
}

func report(indexDir string, w io.Writer) error {
	bucketsReport, err := analyzeBuckets(indexDir)
	if err != nil {
		return err
	}
	chunksReport, err := analyzeChunks(indexDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "bucketsReport.numFiles: %v\n", bucketsReport.numFiles)
	fmt.Fprintf(w, "chunksReport.numFiles: %v\n", chunksReport.numFiles)
	if bucketsReport.numBytes > 0 {
		fmt.Fprintf(w, "dataBytes is this many times more than bucketed size (should be less than 1) %v\n", float32(chunksReport.dataBytes)/float32(bucketsReport.numBytes))
	}
	fmt.Fprintf(w, "chunksReport.avgIndexPercent: %v\n", chunksReport.avgIndexPercent)
	fmt.Fprintf(w, "chunksReport.chordsInIndexes: %v\n", chunksReport.chordsInIndexes)

	fmt.Fprintf(w, "bucketsReport.numChords: %v\n", bucketsReport.numChords)
	fmt.Fprintf(w, "numCalcedChords from indexes: %v\n", util.Sum(chunksReport.chordsInIndexes))

	fmt.Fprintf(w, "bucketsReport.numBytes: %v\n", bucketsReport.numBytes)
	fmt.Fprintf(w, "chunksReport.totalBytes: %v\n", chunksReport.totalBytes)
	return nil
}
