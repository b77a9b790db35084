package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-todos-api/internal/domain"
	opensearch "github.com/opensearch-project/opensearch-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture records the last request the fake index saw.
type capture struct {
	method string
	path   string
	body   []byte
}

func newTestIndex(t *testing.T, status int, response string, rec *capture) *Index {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)

	client, err := opensearch.NewClient(opensearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewIndex(client, "todos")
}

func TestUpsert_WritesDocumentByID(t *testing.T) {
	var rec capture
	idx := newTestIndex(t, http.StatusCreated, `{"result":"created"}`, &rec)

	err := idx.Upsert(context.Background(), "todo-1", domain.TodoDocument{
		TodoID:    "todo-1",
		UserID:    "u1",
		CreatedAt: "2023-01-01T00:00:00Z",
		Name:      "Buy milk",
		Priority:  3,
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, rec.method)
	assert.Equal(t, "/todos/_doc/todo-1", rec.path)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.body, &doc))
	assert.Equal(t, "Buy milk", doc["name"])
	assert.Equal(t, "u1", doc["userId"])
	assert.EqualValues(t, 3, doc["priority"])
}

func TestUpsert_IndexError(t *testing.T) {
	var rec capture
	idx := newTestIndex(t, http.StatusServiceUnavailable, `{"error":"unavailable"}`, &rec)

	err := idx.Upsert(context.Background(), "todo-1", domain.TodoDocument{TodoID: "todo-1"})
	assert.Error(t, err)
}

func TestSearch_EmptyQuery_ReturnsAllDocuments(t *testing.T) {
	var rec capture
	envelope := `{"hits":{"total":{"value":2},"hits":[]}}`
	idx := newTestIndex(t, http.StatusOK, envelope, &rec)

	raw, err := idx.Search(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, "/todos/_search", rec.path)
	assert.Empty(t, rec.body)
	assert.JSONEq(t, envelope, string(raw))
}

func TestSearch_QueryText_BuildsFuzzyMatch(t *testing.T) {
	var rec capture
	idx := newTestIndex(t, http.StatusOK, `{"hits":{"hits":[]}}`, &rec)

	_, err := idx.Search(context.Background(), "milk")
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.body, &body))
	match := body["query"].(map[string]interface{})["match"].(map[string]interface{})
	name := match["name"].(map[string]interface{})
	assert.Equal(t, "milk", name["query"])
	assert.Equal(t, "AUTO", name["fuzziness"])
}
