package chunk

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/jsphweid/cochonut/bucket"
	"github.com/jsphweid/cochonut/chord"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type ChordKeyToChords = map[string][]model.Chord

func getKeysSorted(m ChordKeyToChords) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func makeChunkOverview(sortedKeys []string) model.ChunkOverview {
	var c model.ChunkOverview
	c.Filename = uuid.New().String() + ".dat"
	c.Start = sortedKeys[0]
	c.End = sortedKeys[len(sortedKeys)-1]
	return c
}

func makeChunk(indexDir string, m ChordKeyToChords, sortedKeys []string) (model.ChunkOverview, error) {
	c := makeChunkOverview(sortedKeys)
	chunkIndex := make(model.ChunkIndex)

	// fill up data section, best ranked chords first within a key
	dataBuf := new(bytes.Buffer)
	for _, key := range sortedKeys {
		chords := m[key]
		chord.RankSortChords(chords)
		start := uint32(dataBuf.Len())
		for _, c := range chords {
			binary.Write(dataBuf, binary.LittleEndian, c.Offset)
			binary.Write(dataBuf, binary.LittleEndian, c.FileNum)
		}
		chunkIndex[key] = model.Pair{Start: start, End: uint32(dataBuf.Len())}
	}

	indexBuf := new(bytes.Buffer)
	if err := gob.NewEncoder(indexBuf).Encode(chunkIndex); err != nil {
		return c, errors.Wrap(err, "couldn't encode chunk index")
	}

	// combine everything together: index size, index, data
	finalBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(finalBytes, uint32(indexBuf.Len()))
	finalBytes = append(finalBytes, indexBuf.Bytes()...)
	finalBytes = append(finalBytes, dataBuf.Bytes()...)

	filename := filepath.Join(indexDir, c.Filename)
	if err := os.WriteFile(filename, finalBytes, 0777); err != nil {
		return c, errors.Wrap(err, "write failed for chunk file")
	}
	return c, nil
}

// maybeMakeChunks writes chunks once enough chords have piled up, or
// everything when force is set. Keys written to a chunk leave m.
func maybeMakeChunks(indexDir string, m ChordKeyToChords, force bool, preferredSize int) ([]model.ChunkOverview, error) {
	var size int
	var currKeys []string

	sortedKeys := getKeysSorted(m)
	var createdChunks []model.ChunkOverview

	for i, key := range sortedKeys {
		currKeys = append(currKeys, key)

		size += len(m[key]) * constants.ChunkEntrySize
		// NOTE: not completely accurate because the index is a gob encoded map
		size += len(key) + 8

		isLast := len(sortedKeys)-1 == i
		if size > preferredSize || (isLast && force) {
			chunk, err := makeChunk(indexDir, m, currKeys)
			if err != nil {
				return createdChunks, err
			}
			createdChunks = append(createdChunks, chunk)
			for _, k := range currKeys {
				delete(m, k)
			}
			size = 0
			currKeys = nil
		}
	}

	return createdChunks, nil
}

// CreateAll regroups every bucket in indexDir into chunks. Chunks are cut on
// bucket boundaries.
func CreateAll(indexDir string, preferredSize int) ([]model.ChunkOverview, error) {
	m := make(ChordKeyToChords)
	var res []model.ChunkOverview

	buckets, err := bucket.GetBucketPaths(indexDir)
	if err != nil {
		return nil, err
	}
	for i, bucketPath := range buckets {
		logrus.Infof("Processing %v of %v buckets", i+1, len(buckets))
		chords, err := bucket.ReadChords(bucketPath)
		if err != nil {
			return nil, err
		}
		for _, c := range chords {
			chordKey := chord.CreateChordKey(c.Notes)
			m[chordKey] = append(m[chordKey], c)
		}

		isLastBucket := len(buckets)-1 == i
		chunks, err := maybeMakeChunks(indexDir, m, isLastBucket, preferredSize)
		if err != nil {
			return nil, err
		}
		res = append(res, chunks...)
	}

	return res, nil
}

// ReadIndex reads the index at the start of a chunk and returns it with its
// encoded length. r is left at the start of the data section.
func ReadIndex(r io.Reader) (model.ChunkIndex, uint32, error) {
	buf := make([]byte, 4)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, errors.Wrap(err, "could not read index length")
	}
	indexLength := binary.LittleEndian.Uint32(buf)

	buf = make([]byte, indexLength)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, 0, errors.Wrap(err, "could not read index")
	}

	var index model.ChunkIndex
	// NOTE: seems silly to have to do this
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&index); err != nil {
		return nil, 0, errors.Wrap(err, "could not decode index")
	}
	return index, indexLength, nil
}

func parseResult(buf []byte) []model.RawResult {
	var res []model.RawResult
	for i := 0; i+constants.ChunkEntrySize <= len(buf); i += constants.ChunkEntrySize {
		var rr model.RawResult
		rr.Offset = binary.LittleEndian.Uint32(buf[i : i+4])
		rr.FileId = binary.LittleEndian.Uint32(buf[i+4 : i+8])
		res = append(res, rr)
	}
	return res
}

func FindChordsInChunk(path string, chordKey string) ([]model.RawResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open chunk")
	}
	defer f.Close()

	index, _, err := ReadIndex(f)
	if err != nil {
		return nil, err
	}
	val, ok := index[chordKey]
	if !ok {
		return nil, nil
	}

	// advance file byte pointer to start position from current
	// TODO: add pagination
	if _, err := f.Seek(int64(val.Start), io.SeekCurrent); err != nil {
		return nil, errors.Wrap(err, "could not seek in chunk")
	}
	buf := make([]byte, val.End-val.Start)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, errors.Wrap(err, "could not read from seeked position")
	}
	return parseResult(buf), nil
}

// FindChords looks a chord up in every chunk whose key range could hold it.
func FindChords(indexDir string, chunks []model.ChunkOverview, notes model.Notes) ([]model.RawResult, error) {
	if len(notes) == 0 {
		return nil, nil
	}

	sorted := append(model.Notes(nil), notes...)
	chordKey := chord.CreateChordKey(sorted)
	var res []model.RawResult
	for _, c := range chunks {
		if chordKey >= c.Start && chordKey <= c.End {
			found, err := FindChordsInChunk(filepath.Join(indexDir, c.Filename), chordKey)
			if err != nil {
				return nil, err
			}
			res = append(res, found...)
		}
	}
	return res, nil
}
