package bucket

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/jsphweid/cochonut/chord"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/db"
	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/parser"
	"github.com/jsphweid/cochonut/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var bucketName = regexp.MustCompile(`^\d\d\d\.dat$`)

func maybePutChordInBuckets(indexDir string, c model.Chord) error {
	// TODO: bucketize other methods? 1. transposed, 2. pitch classes

	// ignore single notes and chords that don't fit a record
	if len(c.Notes) < 2 || len(c.Notes) > constants.MaxChordNotes {
		return nil
	}

	// order them
	sort.Slice(c.Notes, func(i, j int) bool {
		return c.Notes[i] < c.Notes[j]
	})

	bytes := chord.Serialize(c)

	filename := filepath.Join(indexDir, fmt.Sprintf("%03d.dat", c.Notes[0]))
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0777)
	if err != nil {
		return errors.Wrap(err, "could not open bucket")
	}
	defer f.Close()

	if _, err = f.Write(bytes[:]); err != nil {
		return errors.Wrap(err, "could not write chord to bucket")
	}
	return nil
}

func fileHasMetadata(filename string) bool {
	metadatas, err := db.GetScoreMetadatas([]string{filename})
	if err != nil {
		logrus.Warnf("Metadata lookup failed for %v: %v", filename, err)
		return false
	}
	_, ok := metadatas[filename]
	return ok
}

func processScoreFile(indexDir, mediaDir string, fileNum uint32, filename string) (int, error) {
	score, err := parser.ParseFile(filepath.Join(mediaDir, filename))
	if err != nil {
		return 0, err
	}

	hasMetadata := fileHasMetadata(filename)
	for _, c := range chord.GetChords(score, hasMetadata) {
		c.FileNum = fileNum
		if err := maybePutChordInBuckets(indexDir, c); err != nil {
			return 0, err
		}
	}
	return score.LargestDivisor, nil
}

// ProcessAllScoreFiles writes the chords of every score into buckets and
// returns the grid resolution of each score that could be parsed. Scores
// that fail to parse are skipped.
func ProcessAllScoreFiles(indexDir, mediaDir string, m model.FileNumToScorePath) model.FileNumToDivisor {
	divisors := make(model.FileNumToDivisor)
	keys := util.GetKeys(m)
	for i, num := range keys {
		logrus.Infof("Processing %v of %v scores", i+1, len(keys))
		divisor, err := processScoreFile(indexDir, mediaDir, num, m[num])
		if err != nil {
			logrus.Warnf("Skipping %v because: %v", m[num], err)
			continue
		}
		divisors[num] = uint32(divisor)
	}
	return divisors
}

func GetBucketPaths(indexDir string) ([]string, error) {
	files, err := os.ReadDir(indexDir)
	if err != nil {
		return nil, errors.Wrap(err, "could not read index dir")
	}

	var res []string
	for _, file := range files {
		if bucketName.MatchString(file.Name()) {
			res = append(res, filepath.Join(indexDir, file.Name()))
		}
	}
	return res, nil
}

func DeleteAll(indexDir string) error {
	paths, err := GetBucketPaths(indexDir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, "could not delete bucket")
		}
	}
	return nil
}

func ReadChords(path string) ([]model.Chord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't read bucket")
	}
	defer f.Close()

	var res []model.Chord
	bucketReader := bufio.NewReader(f)
	buf := make([]byte, constants.ChordSize)
	for {
		_, err := io.ReadFull(bucketReader, buf)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read chord from bucket")
		}
		res = append(res, chord.Deserialize(buf))
	}
	return res, nil
}
