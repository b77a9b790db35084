package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	todoapp "github.com/go-todos-api/internal/application/todo"
	"github.com/go-todos-api/internal/domain"
	"github.com/go-todos-api/internal/transport/http/middleware"
)

// TodoHandler handles the owner-scoped todo endpoints.
type TodoHandler struct {
	svc todoapp.Service
}

func NewTodoHandler(svc todoapp.Service) *TodoHandler { return &TodoHandler{svc: svc} }

func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	items, err := h.svc.List(r.Context(), claims.UserID)
	if err != nil {
		httpError(w, err)
		return
	}
	if items == nil {
		items = []domain.TodoItem{}
	}
	writeJSON(w, http.StatusOK, ItemsEnvelope{Items: items})
}

func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item, err := h.svc.Create(r.Context(), claims.UserID, req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ItemEnvelope{Item: item})
}

func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var req domain.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.Update(r.Context(), claims.UserID, chi.URLParam(r, "todoId"), req); err != nil {
		httpError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "todoId")); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageEnvelope{})
}

func (h *TodoHandler) Attachment(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	uploadURL, err := h.svc.AttachmentUploadURL(r.Context(), claims.UserID, chi.URLParam(r, "todoId"))
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UploadURLEnvelope{UploadURL: uploadURL})
}
