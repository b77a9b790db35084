package dynamo

// DynamoDB attribute names for the todos table.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	fieldUserID        = "userId"
	fieldTodoID        = "todoId"
	fieldAttachmentURL = "attachmentUrl"
)
