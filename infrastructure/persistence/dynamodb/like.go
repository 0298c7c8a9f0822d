package dynamodb

import (
	"context"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	apperrors "github.com/AbhijeetAayush/My-Portfolio/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// AddLike records a like for the (blogID, visitor token) tuple. The item
// carries a ttl attribute and self-expires after 30 days; likes are never
// explicitly deleted.
func (s *Store) AddLike(ctx context.Context, blogID, token string) error {
	like := domain.NewLike(blogID, token)

	av, err := attributevalue.MarshalMap(encodeLike(like))
	if err != nil {
		return apperrors.NewStoreError("addLike", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to add like",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
		return apperrors.NewStoreError("addLike", err)
	}

	return nil
}

// CountLikes returns the exact number of unexpired like records for a blog
// by walking the like index with a COUNT select. Read failures degrade to
// zero.
func (s *Store) CountLikes(ctx context.Context, blogID string) (int, error) {
	idxPK, _ := likeBlogIndexKey(blogID, "")

	count := 0
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(s.dateIndex),
			KeyConditionExpression: aws.String("GSI1PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: idxPK},
			},
			Select:            types.SelectCount,
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			s.logger.Warn("Failed to count likes, returning zero",
				zap.String("blogID", blogID),
				zap.Error(err),
			)
			return 0, nil
		}

		count += int(result.Count)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	return count, nil
}

// HasLiked reports whether a like record exists for the exact visitor
// token. Because the token embeds a timestamp, this is true only within
// the same clock second as a previous like from the same address.
func (s *Store) HasLiked(ctx context.Context, blogID, token string) (bool, error) {
	pk, sk := likeKey(blogID, token)

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		s.logger.Warn("Failed to check like, treating as not liked",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
		return false, nil
	}

	return result.Item != nil, nil
}
