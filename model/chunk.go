package model

type ChunkOverview struct {
	Start    string
	End      string
	Filename string
}

type Pair struct {
	Start uint32
	End   uint32
}

type ChunkIndex = map[string]Pair

type RawResult struct {
	Offset uint32
	FileId uint32
}
