package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-todos-api/internal/domain"
	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// Index wraps the todos search index. Documents are keyed by todo id, so
// re-indexing the same change record is an idempotent overwrite.
type Index struct {
	client *opensearch.Client
	name   string
}

func NewIndex(client *opensearch.Client, name string) *Index {
	return &Index{client: client, name: name}
}

// Upsert writes doc under its todo id, replacing any prior document with that id.
func (i *Index) Upsert(ctx context.Context, id string, doc domain.TodoDocument) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	res, err := opensearchapi.IndexRequest{
		Index:      i.name,
		DocumentID: id,
		Body:       bytes.NewReader(body),
	}.Do(ctx, i.client)
	if err != nil {
		return fmt.Errorf("index document %s: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index document %s: %s", id, res.Status())
	}
	return nil
}

// Search runs a fuzzy match on name, or returns the index's default page of
// all documents when query is empty. The raw response envelope is returned
// unmodified so callers see scores and sources exactly as the index reports them.
func (i *Index) Search(ctx context.Context, query string) (json.RawMessage, error) {
	req := opensearchapi.SearchRequest{
		Index: []string{i.name},
	}
	if query != "" {
		body, err := json.Marshal(map[string]interface{}{
			"query": map[string]interface{}{
				"match": map[string]interface{}{
					"name": map[string]interface{}{
						"query":     query,
						"fuzziness": "AUTO",
					},
				},
			},
		})
		if err != nil {
			return nil, fmt.Errorf("marshal query: %w", err)
		}
		req.Body = bytes.NewReader(body)
	}

	res, err := req.Do(ctx, i.client)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search: %s", res.Status())
	}
	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read search response: %w", err)
	}
	return json.RawMessage(raw), nil
}
