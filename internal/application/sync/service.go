package sync

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodbstreams/attributevalue"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
	"github.com/go-todos-api/internal/domain"
)

// Indexer is the slice of the search index this service needs.
type Indexer interface {
	Upsert(ctx context.Context, id string, doc domain.TodoDocument) error
}

// Service mirrors qualifying todo insertions into the search index.
//
// Only INSERT events with lock=true in the new image are propagated; updates
// and deletes never touch the index. Documents are upserted under the todo id,
// so at-least-once stream delivery cannot produce duplicates.
type Service interface {
	ProcessBatch(ctx context.Context, records []streamtypes.Record) int
}

type service struct {
	index Indexer
}

func NewService(index Indexer) Service {
	return &service{index: index}
}

// ProcessBatch handles each record independently and returns the number of
// failures. A bad record never stops the rest of the batch.
func (s *service) ProcessBatch(ctx context.Context, records []streamtypes.Record) int {
	failed := 0
	for _, rec := range records {
		if err := s.processRecord(ctx, rec); err != nil {
			slog.Error("could not index change record", "event", rec.EventName, "err", err)
			failed++
		}
	}
	return failed
}

func (s *service) processRecord(ctx context.Context, rec streamtypes.Record) error {
	if rec.EventName != streamtypes.OperationTypeInsert {
		return nil
	}
	if rec.Dynamodb == nil || rec.Dynamodb.NewImage == nil {
		return fmt.Errorf("insert record has no new image")
	}

	var item domain.TodoItem
	if err := attributevalue.UnmarshalMap(rec.Dynamodb.NewImage, &item); err != nil {
		return fmt.Errorf("unmarshal new image: %w", err)
	}
	if !item.Lock {
		return nil
	}
	if item.TodoID == "" {
		return fmt.Errorf("new image missing todoId")
	}

	return s.index.Upsert(ctx, item.TodoID, domain.TodoDocument{
		TodoID:    item.TodoID,
		UserID:    item.UserID,
		CreatedAt: item.CreatedAt,
		Name:      item.Name,
		Priority:  item.Priority,
	})
}
