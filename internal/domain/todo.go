package domain

// TodoItem is the authoritative todo record stored in DynamoDB.
// The table is keyed by (userId, todoId); todoId and createdAt are set once
// at creation and never change.
type TodoItem struct {
	UserID        string `json:"userId" dynamodbav:"userId"`
	TodoID        string `json:"todoId" dynamodbav:"todoId"`
	Name          string `json:"name" dynamodbav:"name"`
	DueDate       string `json:"dueDate,omitempty" dynamodbav:"dueDate,omitempty"`
	Done          bool   `json:"done" dynamodbav:"done"`
	Priority      int    `json:"priority" dynamodbav:"priority"`
	CreatedAt     string `json:"createdAt" dynamodbav:"createdAt"`
	AttachmentURL string `json:"attachmentUrl,omitempty" dynamodbav:"attachmentUrl,omitempty"`
	Lock          bool   `json:"lock" dynamodbav:"lock"`
}

// TodoDocument is the subset of a TodoItem mirrored into the search index
// when the item is published (lock=true). Documents are keyed by TodoID.
type TodoDocument struct {
	TodoID    string `json:"todoId"`
	UserID    string `json:"userId"`
	CreatedAt string `json:"createdAt"`
	Name      string `json:"name"`
	Priority  int    `json:"priority"`
}

// CreateTodoRequest is the typed create payload.
type CreateTodoRequest struct {
	Name     string `json:"name" validate:"required"`
	DueDate  string `json:"dueDate" validate:"omitempty"`
	Priority *int   `json:"priority" validate:"omitempty,min=1,max=3"`
	Lock     bool   `json:"lock"`
}

// UpdateTodoRequest is the typed partial-update payload. All fields are
// optional; a field left out of the request is left unchanged in the store.
type UpdateTodoRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	DueDate  *string `json:"dueDate"`
	Done     *bool   `json:"done"`
	Priority *int    `json:"priority" validate:"omitempty,min=1,max=3"`
}
