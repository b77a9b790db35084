package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	syncapp "github.com/go-todos-api/internal/application/sync"
	"github.com/go-todos-api/internal/config"
	"github.com/go-todos-api/internal/infrastructure/dynamo"
	"github.com/go-todos-api/internal/infrastructure/search"
	"github.com/go-todos-api/internal/infrastructure/streams"
	"github.com/joho/godotenv"
)

// The syncer mirrors published todo insertions from the table's change stream
// into the search index. It runs alongside the API as a separate process.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	dynamoClient := dynamo.NewClient(cfg)
	streamsClient := dynamo.NewStreamsClient(cfg)

	searchClient, err := search.NewClient(cfg)
	if err != nil {
		log.Fatalf("search client: %v", err)
	}
	index := search.NewIndex(searchClient, cfg.SearchIndex)

	svc := syncapp.NewService(index)
	reader := streams.NewReader(dynamoClient, streamsClient, cfg.TodosTable, cfg.StreamPollEvery, svc.ProcessBatch)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("Syncer starting (table=%s index=%s)", cfg.TodosTable, cfg.SearchIndex)
	if err := reader.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("syncer error: %v", err)
	}
	log.Println("Syncer stopped")
}
