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

// CreateComment writes a new comment item.
func (s *Store) CreateComment(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	av, err := attributevalue.MarshalMap(encodeComment(comment))
	if err != nil {
		return nil, apperrors.NewStoreError("createComment", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to create comment",
			zap.String("commentID", comment.CommentID),
			zap.String("blogID", comment.BlogID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("createComment", err)
	}

	return comment, nil
}

// GetCommentsByBlog returns the blog's approved comments oldest-first.
// Comments in any other moderation state are filtered out. Read failures
// degrade to an empty listing.
func (s *Store) GetCommentsByBlog(ctx context.Context, blogID string) ([]*domain.Comment, error) {
	idxPK, _ := commentBlogIndexKey(blogID, 0)

	var comments []*domain.Comment
	var startKey map[string]types.AttributeValue

	for {
		result, err := s.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(s.tableName),
			IndexName:              aws.String(s.dateIndex),
			KeyConditionExpression: aws.String("GSI1PK = :pk"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pk": &types.AttributeValueMemberS{Value: idxPK},
			},
			ScanIndexForward:  aws.Bool(true),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			s.logger.Warn("Failed to query comments, returning empty listing",
				zap.String("blogID", blogID),
				zap.Error(err),
			)
			return []*domain.Comment{}, nil
		}

		for _, raw := range result.Items {
			var item commentItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				s.logger.Warn("Failed to unmarshal comment, skipping", zap.Error(err))
				continue
			}
			if item.Status != domain.CommentStatusApproved {
				continue
			}
			comments = append(comments, decodeComment(item))
		}

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		startKey = result.LastEvaluatedKey
	}

	if comments == nil {
		comments = []*domain.Comment{}
	}
	return comments, nil
}

// GetCommentByID returns the comment, or nil when it does not exist. The
// creation timestamp in the sort key is unknown to callers, so this is a
// range query on the comment's partition.
func (s *Store) GetCommentByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	pk, _ := commentKey(commentID, 0)

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: pk},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		s.logger.Warn("Failed to get comment, treating as absent",
			zap.String("commentID", commentID),
			zap.Error(err),
		)
		return nil, nil
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var item commentItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		s.logger.Warn("Failed to unmarshal comment, treating as absent", zap.Error(err))
		return nil, nil
	}

	return decodeComment(item), nil
}

// DeleteComment removes a comment by id. Returns false when it did not
// exist.
func (s *Store) DeleteComment(ctx context.Context, commentID string) (bool, error) {
	comment, err := s.GetCommentByID(ctx, commentID)
	if err != nil {
		return false, err
	}
	if comment == nil {
		return false, nil
	}

	pk, sk := commentKey(comment.CommentID, comment.CreatedAt)
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	}); err != nil {
		s.logger.Error("Failed to delete comment",
			zap.String("commentID", commentID),
			zap.Error(err),
		)
		return false, apperrors.NewStoreError("deleteComment", err)
	}

	return true, nil
}
