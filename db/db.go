package db

import (
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/jsphweid/cochonut/constants"
	"github.com/jsphweid/cochonut/model"
	"github.com/pkg/errors"
)

// BatchGetItem takes at most 100 keys
const maxBatch = 100

func buildBatchGetInput(table string, filenames []string) *dynamodb.BatchGetItemInput {
	var keys []map[string]*dynamodb.AttributeValue
	for _, filename := range filenames {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(filename),
		}
		keys = append(keys, key)
	}
	return &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
}

func parseMetadatas(items []map[string]*dynamodb.AttributeValue) map[string]model.ScoreMetadata {
	res := make(map[string]model.ScoreMetadata)
	for _, v := range items {
		if v["PK"] == nil || v["PK"].S == nil {
			continue
		}
		var s model.ScoreMetadata
		if v["Year"] != nil && v["Year"].N != nil {
			year, _ := strconv.ParseUint(*v["Year"].N, 10, 32)
			s.Year = uint(year)
		}
		if v["Title"] != nil {
			s.Title = aws.StringValue(v["Title"].S)
		}
		if v["Composer"] != nil {
			s.Composer = aws.StringValue(v["Composer"].S)
		}
		res[*v["PK"].S] = s
	}
	return res
}

// GetScoreMetadatas looks up metadata by score filename. Lookups are off,
// and the result empty, when no DynamoDB endpoint is configured.
func GetScoreMetadatas(filenames []string) (map[string]model.ScoreMetadata, error) {
	if len(filenames) > maxBatch {
		return nil, errors.Errorf("at most %v filenames per lookup, got %v", maxBatch, len(filenames))
	}

	endpoint := constants.GetDynamoEndpoint()
	if len(filenames) == 0 || endpoint == "" {
		return make(map[string]model.ScoreMetadata), nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(constants.GetAwsRegion()),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a new DynamoDB session")
	}

	table := constants.GetDynamoTable()
	client := dynamodb.New(sess)
	dbres, err := client.BatchGetItem(buildBatchGetInput(table, filenames))
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	return parseMetadatas(dbres.Responses[table]), nil
}
