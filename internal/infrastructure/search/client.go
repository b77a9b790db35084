package search

import (
	"github.com/go-todos-api/internal/config"
	opensearch "github.com/opensearch-project/opensearch-go/v2"
)

// NewClient creates an OpenSearch client for the configured endpoint.
// Credentials are optional — local clusters and IAM-proxied domains run without them.
func NewClient(cfg *config.Config) (*opensearch.Client, error) {
	return opensearch.NewClient(opensearch.Config{
		Addresses: []string{cfg.SearchEndpoint},
		Username:  cfg.SearchUsername,
		Password:  cfg.SearchPassword,
	})
}
