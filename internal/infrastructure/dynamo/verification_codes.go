package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/biteright/biteright-api/internal/domain"
)

// VerificationCodeRepo manages the single email-verification code slot per
// user. PK: user_id; Put replaces any previous code in place.
type VerificationCodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewVerificationCodeRepo(client *dynamodb.Client, tableName string) *VerificationCodeRepo {
	return &VerificationCodeRepo{client: client, tableName: tableName}
}

func (r *VerificationCodeRepo) Put(ctx context.Context, v *domain.VerificationCode) error {
	item, err := attributevalue.MarshalMap(v)
	if err != nil {
		return fmt.Errorf("marshal verification code: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *VerificationCodeRepo) Get(ctx context.Context, userID string) (*domain.VerificationCode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("verification code not found: %w", domain.ErrNotFound)
	}
	var v domain.VerificationCode
	if err := attributevalue.UnmarshalMap(out.Item, &v); err != nil {
		return nil, err
	}
	return &v, nil
}
