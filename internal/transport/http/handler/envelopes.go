package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-todos-api/internal/domain"
)

// MessageEnvelope is the generic response wrapper.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ItemsEnvelope wraps owner-scoped listing responses.
type ItemsEnvelope struct {
	Items []domain.TodoItem `json:"items"`
}

// ItemEnvelope wraps single-item responses.
type ItemEnvelope struct {
	Item *domain.TodoItem `json:"item"`
}

// UploadURLEnvelope wraps attachment responses.
type UploadURLEnvelope struct {
	UploadURL string `json:"uploadUrl"`
}

// SearchEnvelope wraps discover responses; result is the raw index envelope.
type SearchEnvelope struct {
	Result json.RawMessage `json:"result"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Error: msg})
}

// httpError maps domain sentinel errors onto HTTP status codes. Anything
// unmapped is an infrastructure failure and surfaces as a 500.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
