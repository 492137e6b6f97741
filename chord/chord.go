package chord

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/model"
	"github.com/jsphweid/cochonut/segment"
	"github.com/jsphweid/cochonut/util"
)

func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

func getChord(s model.Segment, largestDivisor int) model.Chord {
	var c model.Chord
	for _, p := range s.Pitches {
		key := p.MidiKey()
		// NOTE: notated octaves can push Cb/B# just outside the midi range
		if key < 0 || key > 127 {
			continue
		}
		c.Notes = append(c.Notes, uint8(key))
	}
	c.Offset = uint32(s.Start)
	c.FormedByAttack = s.Attacks > 0
	c.Sustained = s.Length >= largestDivisor
	return c
}

// GetChords returns one chord per minimal segment that sounds anything.
func GetChords(score *model.Score, hasMetadata bool) []model.Chord {
	var chords []model.Chord
	for _, s := range segment.FromIntervals(score.Intervals) {
		c := getChord(s, score.LargestDivisor)
		if len(c.Notes) == 0 {
			continue
		}
		c.FileHasMetadata = hasMetadata
		chords = append(chords, c)
	}
	return chords
}

func rankScore(c model.Chord) uint8 {
	var score uint8
	if c.FileHasMetadata {
		score += 4
	}
	if c.FormedByAttack {
		score += 2
	}
	if c.Sustained {
		score += 1
	}
	return score
}

// RankSortChords puts the most useful search hits first. Ties keep their
// order.
func RankSortChords(chords []model.Chord) {
	for i := range chords {
		chords[i].RankScore = rankScore(chords[i])
	}
	sort.SliceStable(chords, func(i, j int) bool {
		return chords[i].RankScore > chords[j].RankScore
	})
}

func serializeChordFlags(cf model.ChordFlag) byte {
	var b byte
	if cf.FileHasMetadata {
		b |= 1
	}
	if cf.FormedByAttack {
		b |= 1 << 1
	}
	if cf.Sustained {
		b |= 1 << 2
	}
	return b
}

func deserializeChordFlags(b byte) model.ChordFlag {
	return model.ChordFlag{
		FileHasMetadata: b&1 != 0,
		FormedByAttack:  b&(1<<1) != 0,
		Sustained:       b&(1<<2) != 0,
	}
}

// Serialize packs a chord into constants.ChordSize bytes: notes padded with
// zeros, offset, file number, flags. Notes past constants.MaxChordNotes are
// dropped.
func Serialize(c model.Chord) [constants.ChordSize]byte {
	var res [constants.ChordSize]byte
	for i, note := range c.Notes {
		if i >= constants.MaxChordNotes {
			break
		}
		res[i] = note
	}
	binary.LittleEndian.PutUint32(res[16:20], c.Offset)
	binary.LittleEndian.PutUint32(res[20:24], c.FileNum)
	res[24] = serializeChordFlags(model.ChordFlag{
		FileHasMetadata: c.FileHasMetadata,
		FormedByAttack:  c.FormedByAttack,
		Sustained:       c.Sustained,
	})
	return res
}

func Deserialize(buf []byte) model.Chord {
	var c model.Chord
	notes := make([]uint8, constants.MaxChordNotes)
	copy(notes, buf[:constants.MaxChordNotes])
	c.Notes = util.FilterZeros(notes)
	c.Offset = binary.LittleEndian.Uint32(buf[16:20])
	c.FileNum = binary.LittleEndian.Uint32(buf[20:24])
	flags := deserializeChordFlags(buf[24])
	c.FileHasMetadata = flags.FileHasMetadata
	c.FormedByAttack = flags.FormedByAttack
	c.Sustained = flags.Sustained
	return c
}
