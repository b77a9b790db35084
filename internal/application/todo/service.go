package todo

import (
	"context"
	"fmt"
	"time"

	"github.com/go-todos-api/internal/domain"
	"github.com/go-todos-api/internal/pkg/id"
	"github.com/go-todos-api/internal/pkg/validate"
)

// defaultPriority applies when a create request carries no priority.
const defaultPriority = 1

// Repository is the slice of the todos table this service needs.
type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]domain.TodoItem, error)
	Put(ctx context.Context, item *domain.TodoItem) error
	Update(ctx context.Context, userID, todoID string, updates map[string]interface{}) error
	Delete(ctx context.Context, userID, todoID string) error
	SetAttachmentURL(ctx context.Context, userID, todoID, url string) error
}

// AttachmentStore issues upload URLs for attachment objects.
type AttachmentStore interface {
	PresignUpload(ctx context.Context, key string, ttl time.Duration) (string, error)
	ObjectURL(key string) string
}

type Service interface {
	List(ctx context.Context, userID string) ([]domain.TodoItem, error)
	Create(ctx context.Context, userID string, req domain.CreateTodoRequest) (*domain.TodoItem, error)
	Update(ctx context.Context, userID, todoID string, req domain.UpdateTodoRequest) error
	Delete(ctx context.Context, userID, todoID string) error
	AttachmentUploadURL(ctx context.Context, userID, todoID string) (string, error)
}

type service struct {
	repo        Repository
	attachments AttachmentStore
	uploadTTL   time.Duration
}

func NewService(repo Repository, attachments AttachmentStore, uploadTTL time.Duration) Service {
	return &service{repo: repo, attachments: attachments, uploadTTL: uploadTTL}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.TodoItem, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateTodoRequest) (*domain.TodoItem, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	priority := defaultPriority
	if req.Priority != nil {
		priority = *req.Priority
	}
	item := &domain.TodoItem{
		UserID:    userID,
		TodoID:    id.New(),
		Name:      req.Name,
		DueDate:   req.DueDate,
		Done:      false,
		Priority:  priority,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Lock:      req.Lock,
	}
	if err := s.repo.Put(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update writes only the fields the caller supplied; absent fields keep their
// stored value.
func (s *service) Update(ctx context.Context, userID, todoID string, req domain.UpdateTodoRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.DueDate != nil {
		updates["dueDate"] = *req.DueDate
	}
	if req.Done != nil {
		updates["done"] = *req.Done
	}
	if req.Priority != nil {
		updates["priority"] = *req.Priority
	}
	if len(updates) == 0 {
		return fmt.Errorf("no fields to update: %w", domain.ErrBadRequest)
	}
	return s.repo.Update(ctx, userID, todoID, updates)
}

func (s *service) Delete(ctx context.Context, userID, todoID string) error {
	return s.repo.Delete(ctx, userID, todoID)
}

// AttachmentUploadURL presigns a PUT for the item's attachment object and
// records the object's public URL on the item. The caller uploads the bytes
// directly to the object store.
func (s *service) AttachmentUploadURL(ctx context.Context, userID, todoID string) (string, error) {
	key := fmt.Sprintf("attachments/%s/%s", userID, todoID)
	uploadURL, err := s.attachments.PresignUpload(ctx, key, s.uploadTTL)
	if err != nil {
		return "", err
	}
	if err := s.repo.SetAttachmentURL(ctx, userID, todoID, s.attachments.ObjectURL(key)); err != nil {
		return "", err
	}
	return uploadURL, nil
}
