package discover

import (
	"context"
	"encoding/json"
)

// Searcher is the slice of the search index this service needs.
type Searcher interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

// Service answers public discover queries over published todos. Results are
// the raw index envelope; there is no owner filtering by design.
type Service interface {
	Search(ctx context.Context, query string) (json.RawMessage, error)
}

type service struct {
	index Searcher
}

func NewService(index Searcher) Service {
	return &service{index: index}
}

func (s *service) Search(ctx context.Context, query string) (json.RawMessage, error) {
	return s.index.Search(ctx, query)
}
