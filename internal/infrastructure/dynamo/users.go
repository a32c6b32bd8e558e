package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/biteright/biteright-api/internal/config"
	"github.com/biteright/biteright-api/internal/domain"
)

// UserRepo provides typed DynamoDB operations for the users table plus the
// uniqueness-claims and profiles tables that registration writes atomically.
//
// Uniqueness of username and email is enforced through claim items
// ("username#<v>" / "email#<v>") written in the same TransactWriteItems call
// as the user record, each guarded by attribute_not_exists. A duplicate
// registration therefore cancels the whole transaction and surfaces as
// domain.ErrConflict. No user row is ever left without its claims or
// profile.
type UserRepo struct {
	client *dynamodb.Client
	tables config.DynamoTables
}

func NewUserRepo(client *dynamodb.Client, tables config.DynamoTables) *UserRepo {
	return &UserRepo{client: client, tables: tables}
}

func usernameClaim(v string) string { return "username#" + v }
func emailClaim(v string) string    { return "email#" + v }

// CreateWithProfile inserts the user, its profile record and both uniqueness
// claims in a single transaction.
func (r *UserRepo) CreateWithProfile(ctx context.Context, u *domain.User, p *domain.Profile) error {
	userItem, err := attributevalue.MarshalMap(u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	profileItem, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:           aws.String(r.tables.Users),
				Item:                userItem,
				ConditionExpression: aws.String("attribute_not_exists(user_id)"),
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tables.Profiles),
				Item:      profileItem,
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Uniques),
				Item:                     strKey(claimAttr, usernameClaim(u.Username)),
				ConditionExpression:      aws.String("attribute_not_exists(#c)"),
				ExpressionAttributeNames: map[string]string{"#c": claimAttr},
			}},
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Uniques),
				Item:                     strKey(claimAttr, emailClaim(u.Email)),
				ConditionExpression:      aws.String("attribute_not_exists(#c)"),
				ExpressionAttributeNames: map[string]string{"#c": claimAttr},
			}},
		},
	})
	return mapConditionErr(err)
}

func (r *UserRepo) Get(ctx context.Context, userID string) (*domain.User, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Users),
		Key:       strKey("user_id", userID),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	var u domain.User
	if err := attributevalue.UnmarshalMap(out.Item, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.queryGSI(ctx, "username-index", fieldUsername, username)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.queryGSI(ctx, "email-index", fieldEmail, email)
}

// Update applies a partial field update to the user item.
func (r *UserRepo) Update(ctx context.Context, userID string, updates map[string]interface{}) error {
	updates[fieldUpdatedAt] = time.Now().UTC().Format(time.RFC3339)
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	_, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tables.Users),
		Key:                       strKey("user_id", userID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	})
	return err
}

// UpdateUsername moves the uniqueness claim and rewrites the username in one
// transaction, so a concurrent registration cannot grab either value.
func (r *UserRepo) UpdateUsername(ctx context.Context, userID, oldUsername, newUsername string) error {
	return r.updateUniqueField(ctx, userID, fieldUsername, usernameClaim(oldUsername), usernameClaim(newUsername), newUsername)
}

// UpdateEmail moves the uniqueness claim and rewrites the email in one
// transaction.
func (r *UserRepo) UpdateEmail(ctx context.Context, userID, oldEmail, newEmail string) error {
	return r.updateUniqueField(ctx, userID, fieldEmail, emailClaim(oldEmail), emailClaim(newEmail), newEmail)
}

func (r *UserRepo) updateUniqueField(ctx context.Context, userID, attr, oldClaim, newClaim, newValue string) error {
	_, err := r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tables.Uniques),
				Item:                     strKey(claimAttr, newClaim),
				ConditionExpression:      aws.String("attribute_not_exists(#c)"),
				ExpressionAttributeNames: map[string]string{"#c": claimAttr},
			}},
			{Delete: &types.Delete{
				TableName: aws.String(r.tables.Uniques),
				Key:       strKey(claimAttr, oldClaim),
			}},
			{Update: &types.Update{
				TableName:                aws.String(r.tables.Users),
				Key:                      strKey("user_id", userID),
				UpdateExpression:         aws.String("SET #a = :v, #u = :t"),
				ExpressionAttributeNames: map[string]string{"#a": attr, "#u": fieldUpdatedAt},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":v": &types.AttributeValueMemberS{Value: newValue},
					":t": &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)},
				},
			}},
		},
	})
	return mapConditionErr(err)
}

func (r *UserRepo) queryGSI(ctx context.Context, index, attr, value string) (*domain.User, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tables.Users),
		IndexName:                 aws.String(index),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": attr},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: value}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("user not found: %w", domain.ErrNotFound)
	}
	var u domain.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &u); err != nil {
		return nil, err
	}
	return &u, nil
}
