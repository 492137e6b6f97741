package model

type Notes = []uint8

type Chord struct {
	Offset          uint32
	Notes           Notes
	FileNum         uint32
	FileHasMetadata bool
	FormedByAttack  bool
	Sustained       bool

	// NOTE: not guaranteed to be meaningful
	RankScore uint8
}

type ChordFlag struct {
	FileHasMetadata bool
	FormedByAttack  bool
	Sustained       bool
}

type FileNumToScorePath = map[uint32]string
type FileNumToDivisor = map[uint32]uint32
