package handler

import (
	"net/http"

	"github.com/go-todos-api/internal/application/discover"
)

// SearchHandler handles the public discover endpoint.
type SearchHandler struct {
	svc discover.Service
}

func NewSearchHandler(svc discover.Service) *SearchHandler { return &SearchHandler{svc: svc} }

// Search proxies q to the search index. No auth: published items are
// discoverable by anyone.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SearchEnvelope{Result: result})
}
