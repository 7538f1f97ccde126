package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCollectionsTableName = "collections"

// dynamoAPI is the subset of *dynamodb.Client the store needs.
type dynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

type collectionItem struct {
	Name      string `dynamodbav:"name"`
	Document  string `dynamodbav:"document"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DynamoDocumentStore keeps one item per collection.
//
// Table requirements:
//   - PK: name (string)
//
// A single item is capped at 400 KB by DynamoDB, which bounds the size of
// each collection on this backend.
type DynamoDocumentStore struct {
	ddb       dynamoAPI
	tableName string
}

var _ DocumentStore = (*DynamoDocumentStore)(nil)

func NewDynamoDocumentStore(ddb *dynamodb.Client) *DynamoDocumentStore {
	return newDynamoDocumentStore(ddb, getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName))
}

func newDynamoDocumentStore(ddb dynamoAPI, tableName string) *DynamoDocumentStore {
	return &DynamoDocumentStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoDocumentStore) TableName() string {
	return s.tableName
}

func (s *DynamoDocumentStore) LoadDocument(ctx context.Context, name string) ([]byte, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Document), nil
}

func (s *DynamoDocumentStore) SaveDocument(ctx context.Context, name string, doc []byte) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Name:      name,
		Document:  string(doc),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}
	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
