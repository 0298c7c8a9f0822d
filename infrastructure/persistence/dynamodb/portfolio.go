package dynamodb

import (
	"context"
	"time"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	apperrors "github.com/AbhijeetAayush/My-Portfolio/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// GetPortfolio returns the portfolio for userID, or nil when none is
// configured yet. Absence is a valid outcome, not an error.
func (s *Store) GetPortfolio(ctx context.Context, userID string) (*domain.Portfolio, error) {
	pk, sk := portfolioKey(userID)

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		s.logger.Warn("Failed to get portfolio, treating as absent",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, nil
	}

	if result.Item == nil {
		return nil, nil
	}

	var item portfolioItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		s.logger.Warn("Failed to unmarshal portfolio, treating as absent", zap.Error(err))
		return nil, nil
	}

	return decodePortfolio(item), nil
}

// UpsertPortfolio merges the set fields of patch into the stored portfolio,
// creating it on first write, and always refreshes updated_at.
func (s *Store) UpsertPortfolio(ctx context.Context, userID string, patch domain.PortfolioPatch) (*domain.Portfolio, error) {
	current, err := s.GetPortfolio(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		current = domain.EmptyPortfolio(userID)
	}

	patch.Apply(current)
	current.UpdatedAt = time.Now().Unix()

	av, err := attributevalue.MarshalMap(encodePortfolio(current))
	if err != nil {
		return nil, apperrors.NewStoreError("upsertPortfolio", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to upsert portfolio",
			zap.String("userID", userID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("upsertPortfolio", err)
	}

	return current, nil
}

func primaryKey(pk, sk string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"PK": &types.AttributeValueMemberS{Value: pk},
		"SK": &types.AttributeValueMemberS{Value: sk},
	}
}
