package streams

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodbstreams"
	streamtypes "github.com/aws/aws-sdk-go-v2/service/dynamodbstreams/types"
)

// BatchFunc handles one batch of change records and reports how many failed.
// Failures are the handler's concern; the reader only logs the count and
// keeps polling, so redelivered records must be safe to process twice.
type BatchFunc func(ctx context.Context, records []streamtypes.Record) int

// Reader polls the todos table's DynamoDB Stream and feeds record batches to
// a handler. One reader per process; shard iterators live in the Run loop.
type Reader struct {
	db        *dynamodb.Client
	streams   *dynamodbstreams.Client
	tableName string
	pollEvery time.Duration
	handle    BatchFunc
}

func NewReader(db *dynamodb.Client, streams *dynamodbstreams.Client, tableName string, pollEvery time.Duration, handle BatchFunc) *Reader {
	return &Reader{db: db, streams: streams, tableName: tableName, pollEvery: pollEvery, handle: handle}
}

// Run polls until ctx is cancelled.
func (r *Reader) Run(ctx context.Context) error {
	streamArn, err := r.streamArn(ctx)
	if err != nil {
		return err
	}
	slog.Info("stream reader started", "table", r.tableName, "stream", streamArn)

	iterators := make(map[string]string) // shardID -> next iterator; "" marks an exhausted shard
	ticker := time.NewTicker(r.pollEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		r.poll(ctx, streamArn, iterators)
	}
}

func (r *Reader) streamArn(ctx context.Context) (string, error) {
	out, err := r.db.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return "", fmt.Errorf("describe table %s: %w", r.tableName, err)
	}
	if out.Table.LatestStreamArn == nil {
		return "", fmt.Errorf("table %s has no stream enabled", r.tableName)
	}
	return *out.Table.LatestStreamArn, nil
}

func (r *Reader) poll(ctx context.Context, streamArn string, iterators map[string]string) {
	desc, err := r.streams.DescribeStream(ctx, &dynamodbstreams.DescribeStreamInput{
		StreamArn: aws.String(streamArn),
	})
	if err != nil {
		slog.Warn("describe stream failed", "err", err)
		return
	}

	for _, shard := range desc.StreamDescription.Shards {
		shardID := aws.ToString(shard.ShardId)
		it, seen := iterators[shardID]
		if seen && it == "" {
			continue // shard exhausted
		}
		if !seen {
			gi, err := r.streams.GetShardIterator(ctx, &dynamodbstreams.GetShardIteratorInput{
				StreamArn:         aws.String(streamArn),
				ShardId:           shard.ShardId,
				ShardIteratorType: streamtypes.ShardIteratorTypeTrimHorizon,
			})
			if err != nil {
				slog.Warn("get shard iterator failed", "shard", shardID, "err", err)
				continue
			}
			it = aws.ToString(gi.ShardIterator)
		}

		out, err := r.streams.GetRecords(ctx, &dynamodbstreams.GetRecordsInput{
			ShardIterator: aws.String(it),
		})
		if err != nil {
			// Iterator may have expired; drop it and re-acquire on the next poll.
			slog.Warn("get records failed", "shard", shardID, "err", err)
			delete(iterators, shardID)
			continue
		}

		if len(out.Records) > 0 {
			if failed := r.handle(ctx, out.Records); failed > 0 {
				slog.Warn("batch had failing records", "shard", shardID, "failed", failed, "total", len(out.Records))
			}
		}
		iterators[shardID] = aws.ToString(out.NextShardIterator)
	}
}
