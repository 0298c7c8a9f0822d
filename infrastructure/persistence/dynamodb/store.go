package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Client is the slice of the DynamoDB API the store consumes. The AWS SDK
// client satisfies it; tests substitute an in-memory fake.
type Client interface {
	GetItem(ctx context.Context, input *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, input *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, input *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, input *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, input *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store implements every access pattern of the single-table design. It is
// explicitly constructed and passed into handlers; there is no ambient
// package-level client state.
//
// Failure semantics are asymmetric on purpose: reads degrade to absent or
// empty results with a logged warning, writes propagate a StoreError.
type Store struct {
	client    Client
	tableName string
	dateIndex string // GSI1
	slugIndex string // GSI2
	logger    *zap.Logger
}

// NewStore creates a store bound to one table and its two indexes.
func NewStore(client Client, tableName, dateIndex, slugIndex string, logger *zap.Logger) *Store {
	return &Store{
		client:    client,
		tableName: tableName,
		dateIndex: dateIndex,
		slugIndex: slugIndex,
		logger:    logger,
	}
}
