package dynamodb

import (
	"context"
	"time"

	"github.com/AbhijeetAayush/My-Portfolio/domain"
	apperrors "github.com/AbhijeetAayush/My-Portfolio/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// GetUserByEmail returns the admin user, or nil when no such account
// exists or the read fails.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	pk, sk := userKey(email)

	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       primaryKey(pk, sk),
	})
	if err != nil {
		s.logger.Warn("Failed to get user, treating as absent",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, nil
	}

	if result.Item == nil {
		return nil, nil
	}

	var item userItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		s.logger.Warn("Failed to unmarshal user, treating as absent", zap.Error(err))
		return nil, nil
	}

	return decodeUser(item), nil
}

// CreateUser writes an admin account. Used by the bootstrap command.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	av, err := attributevalue.MarshalMap(encodeUser(user))
	if err != nil {
		return apperrors.NewStoreError("createUser", err)
	}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	}); err != nil {
		s.logger.Error("Failed to create user",
			zap.String("email", user.Email),
			zap.Error(err),
		)
		return apperrors.NewStoreError("createUser", err)
	}

	return nil
}

// TouchLastLogin records the login time. Best-effort: login bookkeeping
// must never block authentication, so failures are logged and swallowed.
func (s *Store) TouchLastLogin(ctx context.Context, email string) {
	expr, err := expression.NewBuilder().
		WithUpdate(expression.Set(
			expression.Name("last_login"),
			expression.Value(time.Now().Unix()),
		)).
		Build()
	if err != nil {
		s.logger.Warn("Failed to build last login update", zap.Error(err))
		return
	}

	pk, sk := userKey(email)
	if _, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.tableName),
		Key:                       primaryKey(pk, sk),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}); err != nil {
		s.logger.Warn("Failed to record last login",
			zap.String("email", email),
			zap.Error(err),
		)
	}
}
