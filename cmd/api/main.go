package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-todos-api/internal/config"
	"github.com/go-todos-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-todos-api/internal/infrastructure/jwt"
	s3infra "github.com/go-todos-api/internal/infrastructure/s3"
	"github.com/go-todos-api/internal/infrastructure/search"
	transporthttp "github.com/go-todos-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// Bootstrap the todos table (creates it if it doesn't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg)

	jwtProvider, err := jwtinfra.NewProvider(cfg)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	s3Client := s3infra.NewClient(cfg)
	attachments := s3infra.NewStore(s3Client, cfg.S3BucketName, cfg.AWSRegion)

	searchClient, err := search.NewClient(cfg)
	if err != nil {
		log.Fatalf("search client: %v", err)
	}
	searchIndex := search.NewIndex(searchClient, cfg.SearchIndex)

	deps := &transporthttp.Deps{
		TodoRepo:    dynamo.NewTodoRepo(dynamoClient, cfg.TodosTable, cfg.TodosUserIndex),
		Attachments: attachments,
		SearchIndex: searchIndex,
		JWTProvider: jwtProvider,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
