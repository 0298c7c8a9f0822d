package dynamodb

import (
	"context"
	"errors"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	apperrors "github.com/AbhijeetAayush/My-Portfolio/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// CreateBlog writes the full blog item with freshly computed index fields.
// The write is conditional on the primary key not existing, so a generated
// id can never be silently overwritten. Slug uniqueness is the caller's
// pre-check; it is not atomic with this write.
func (s *Store) CreateBlog(ctx context.Context, blog *domain.Blog) (*domain.Blog, error) {
	av, err := attributevalue.MarshalMap(encodeBlog(blog))
	if err != nil {
		return nil, apperrors.NewStoreError("createBlog", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	}

	if _, err := s.client.PutItem(ctx, input); err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil, apperrors.NewConflictError("blog already exists")
		}
		s.logger.Error("Failed to create blog",
			zap.String("blogID", blog.BlogID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("createBlog", err)
	}

	s.logger.Info("Blog created",
		zap.String("blogID", blog.BlogID),
		zap.String("slug", blog.Slug),
	)

	return blog, nil
}

// GetBlogByID returns the blog, or nil when it does not exist or the read
// fails.
func (s *Store) GetBlogByID(ctx context.Context, blogID string) (*domain.Blog, error) {
	pk, sk := blogKey(blogID)

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		s.logger.Warn("Failed to get blog, treating as absent",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
		return nil, nil
	}

	if result.Item == nil {
		return nil, nil
	}

	var item blogItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		s.logger.Warn("Failed to unmarshal blog, treating as absent", zap.Error(err))
		return nil, nil
	}

	return decodeBlog(item), nil
}

// GetBlogBySlug resolves a slug through the slug index and then looks up
// the owning blog. A dangling index entry yields absent, never an error.
func (s *Store) GetBlogBySlug(ctx context.Context, slug string) (*domain.Blog, error) {
	slugPK, _ := blogSlugIndexKey(slug, "")

	result, err := s.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(s.slugIndex),
		KeyConditionExpression: aws.String("GSI2PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: slugPK},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		s.logger.Warn("Failed to query slug index, treating as absent",
			zap.String("slug", slug),
			zap.Error(err),
		)
		return nil, nil
	}

	if len(result.Items) == 0 {
		return nil, nil
	}

	var item blogItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		s.logger.Warn("Failed to unmarshal slug index entry, treating as absent", zap.Error(err))
		return nil, nil
	}

	blog, err := s.GetBlogByID(ctx, item.BlogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		s.logger.Warn("Slug index points at a missing blog",
			zap.String("slug", slug),
			zap.String("blogID", item.BlogID),
		)
	}
	return blog, nil
}

// ListBlogsByDate returns up to limit blogs newest-first from the date
// index, plus an opaque cursor for the next page. The cursor is empty when
// the listing is exhausted.
func (s *Store) ListBlogsByDate(ctx context.Context, limit int32, cursor string) ([]*domain.Blog, string, error) {
	startKey, err := decodeCursor(cursor)
	if err != nil {
		return nil, "", apperrors.NewValidationError("invalid pagination cursor")
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.tableName),
		IndexName:              aws.String(s.dateIndex),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: blogDatePK},
		},
		ScanIndexForward:  aws.Bool(false),
		Limit:             aws.Int32(limit),
		ExclusiveStartKey: startKey,
	}

	result, err := s.client.Query(ctx, input)
	if err != nil {
		s.logger.Warn("Failed to list blogs, returning empty page", zap.Error(err))
		return []*domain.Blog{}, "", nil
	}

	blogs := make([]*domain.Blog, 0, len(result.Items))
	for _, raw := range result.Items {
		var item blogItem
		if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
			s.logger.Warn("Failed to unmarshal blog item, skipping", zap.Error(err))
			continue
		}
		blogs = append(blogs, decodeBlog(item))
	}

	return blogs, encodeCursor(result.LastEvaluatedKey), nil
}

// UpdateBlog merges patch into the stored blog and rewrites the whole item
// so every index key is recomputed from the merged state. Returns nil when
// the blog does not exist; no item is created.
func (s *Store) UpdateBlog(ctx context.Context, blogID string, patch domain.BlogPatch) (*domain.Blog, error) {
	blog, err := s.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog == nil {
		return nil, nil
	}

	patch.Apply(blog)

	av, err := attributevalue.MarshalMap(encodeBlog(blog))
	if err != nil {
		return nil, apperrors.NewStoreError("updateBlog", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to update blog",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
		return nil, apperrors.NewStoreError("updateBlog", err)
	}

	return blog, nil
}

// DeleteBlog removes the blog's single item; its index entries are
// projections and vanish with it. Comments and likes are not cascaded.
// Returns false when the blog did not exist.
func (s *Store) DeleteBlog(ctx context.Context, blogID string) (bool, error) {
	blog, err := s.GetBlogByID(ctx, blogID)
	if err != nil {
		return false, err
	}
	if blog == nil {
		return false, nil
	}

	pk, sk := blogKey(blogID)
	if _, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	}); err != nil {
		s.logger.Error("Failed to delete blog",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
		return false, apperrors.NewStoreError("deleteBlog", err)
	}

	s.logger.Info("Blog deleted", zap.String("blogID", blogID))
	return true, nil
}

// UpdateBlogCounters refreshes the denormalized likes_count or
// comments_count on an existing blog. Best-effort: the counters are
// recomputed again on the next read, so a failed refresh is only logged.
func (s *Store) UpdateBlogCounters(ctx context.Context, blogID string, likes, comments *int) {
	if likes == nil && comments == nil {
		return
	}

	update := expression.UpdateBuilder{}
	if likes != nil {
		update = update.Set(expression.Name("likes_count"), expression.Value(*likes))
	}
	if comments != nil {
		update = update.Set(expression.Name("comments_count"), expression.Value(*comments))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name("PK"))).
		Build()
	if err != nil {
		s.logger.Warn("Failed to build counter update", zap.Error(err))
		return
	}

	pk, sk := blogKey(blogID)
	_, err = s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       primaryKey(pk, sk),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			// The blog was deleted between the count and the refresh.
			return
		}
		s.logger.Warn("Failed to refresh blog counters",
			zap.String("blogID", blogID),
			zap.Error(err),
		)
	}
}
