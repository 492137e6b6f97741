package model

type ScoreMetadata struct {
	Title    string
	Composer string
	Year     uint
}
