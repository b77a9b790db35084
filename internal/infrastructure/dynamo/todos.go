package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-todos-api/internal/domain"
)

// TodoRepo provides typed DynamoDB operations for the todos table.
type TodoRepo struct {
	client    *dynamodb.Client
	tableName string
	userIndex string
}

func NewTodoRepo(client *dynamodb.Client, tableName, userIndex string) *TodoRepo {
	return &TodoRepo{client: client, tableName: tableName, userIndex: userIndex}
}

// ListByUser returns every item owned by userID via the userId-index GSI.
// Order is store-native and not guaranteed stable.
func (r *TodoRepo) ListByUser(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.userIndex),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("query todos: %v: %w", err, domain.ErrUnavailable)
	}
	var items []domain.TodoItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Put stores an item unconditionally. Last writer wins on key collision,
// which cannot happen in practice since todo ids are generated server-side.
func (r *TodoRepo) Put(ctx context.Context, item *domain.TodoItem) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal todo: %w", err)
	}
	if _, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}); err != nil {
		return fmt.Errorf("put todo: %v: %w", err, domain.ErrUnavailable)
	}
	return nil
}

// Update applies a partial SET update. Only fields present in updates are
// touched; everything else keeps its stored value.
func (r *TodoRepo) Update(ctx context.Context, userID, todoID string, updates map[string]interface{}) error {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return err
	}
	if _, err = r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       itemKey(userID, todoID),
		UpdateExpression:          aws.String(ue.Expr),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
	}); err != nil {
		return fmt.Errorf("update todo: %v: %w", err, domain.ErrUnavailable)
	}
	return nil
}

// Delete removes an item unconditionally; deleting an absent key is a no-op.
func (r *TodoRepo) Delete(ctx context.Context, userID, todoID string) error {
	if _, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       itemKey(userID, todoID),
	}); err != nil {
		return fmt.Errorf("delete todo: %v: %w", err, domain.ErrUnavailable)
	}
	return nil
}

// SetAttachmentURL sets the attachmentUrl field, leaving all others untouched.
func (r *TodoRepo) SetAttachmentURL(ctx context.Context, userID, todoID, url string) error {
	return r.Update(ctx, userID, todoID, map[string]interface{}{fieldAttachmentURL: url})
}
