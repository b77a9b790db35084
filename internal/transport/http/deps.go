package http

import (
	"github.com/go-todos-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-todos-api/internal/infrastructure/jwt"
	s3infra "github.com/go-todos-api/internal/infrastructure/s3"
	"github.com/go-todos-api/internal/infrastructure/search"
)

// Deps holds all infrastructure dependencies for the router. Everything is
// constructed once at process start and injected; nothing here is global.
type Deps struct {
	TodoRepo    *dynamo.TodoRepo
	Attachments *s3infra.Store
	SearchIndex *search.Index
	JWTProvider *jwtinfra.Provider
}
