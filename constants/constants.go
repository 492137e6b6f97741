package constants

import "os"

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	return os.Getenv("MEDIA_PATH")
}

// GetDynamoEndpoint returns "" when metadata lookups are disabled.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMODB_ENDPOINT")
}

func GetDynamoTable() string {
	table := os.Getenv("DYNAMODB_TABLE")
	if table != "" {
		return table
	}
	return "cochonut-metadata"
}

func GetAwsRegion() string {
	region := os.Getenv("AWS_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

const MaxChordNotes = 16

// 16 for notes, 4 for offset, 4 for fileNum, 1 for flags
const ChordSize = 25

// 4 for offset, 4 for fileNum
const ChunkEntrySize = 8

const PreferredChunkSize = 64 * 1024 * 1024

// onsets in a sample excerpt
const SampleOnsets = 10

const AllChunksFilename = "allChunks.dat"
const FileNumToNameFilename = "fileNumToName.dat"
const FileNumToDivisorFilename = "fileNumToDivisor.dat"
