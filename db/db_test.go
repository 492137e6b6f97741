package db

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jsphweid/cochonut/model"
	"github.com/stretchr/testify/assert"
)

func TestBuildBatchGetInput(t *testing.T) {
	input := buildBatchGetInput("metadata", []string{"a.musicxml", "b.musicxml"})

	assert := assert.New(t)
	keys := input.RequestItems["metadata"].Keys
	assert.Len(keys, 2)
	assert.Equal("a.musicxml", *keys[0]["PK"].S)
	assert.Equal("b.musicxml", *keys[1]["PK"].S)
}

func TestParseMetadatas(t *testing.T) {
	items := []map[string]*dynamodb.AttributeValue{
		{
			"PK":       {S: aws.String("a.musicxml")},
			"Title":    {S: aws.String("Chorale")},
			"Composer": {S: aws.String("Anonymous")},
			"Year":     {N: aws.String("1724")},
		},
		{
			"PK": {S: aws.String("b.musicxml")},
		},
		{
			"Title": {S: aws.String("no key")},
		},
	}

	assert.Equal(t, map[string]model.ScoreMetadata{
		"a.musicxml": {Title: "Chorale", Composer: "Anonymous", Year: 1724},
		"b.musicxml": {},
	}, parseMetadatas(items))
}

func TestLookupsOffWithoutEndpoint(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "")

	res, err := GetScoreMetadatas([]string{"a.musicxml"})
	assert.NoError(t, err)
	assert.Empty(t, res)

	_, err = GetScoreMetadatas(make([]string, 101))
	assert.Error(t, err)
}
