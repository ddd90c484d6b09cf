package dto

// CreateTaskRequest is the JSON body for POST /tasks. Any status field in the
// request is ignored; new tasks always start PENDING.
type CreateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=150"`
	Description string `json:"description" binding:"required,max=250"`
	UserID      int64  `json:"user_id" binding:"required,gt=0"`
}

// UpdateTaskRequest is the JSON body for PUT /tasks/{id}. Both fields are
// replaced unconditionally.
type UpdateTaskRequest struct {
	Title       string `json:"title" binding:"required,max=150"`
	Description string `json:"description" binding:"required,max=250"`
}

// UpdateTaskStatusRequest is the JSON body for PATCH /tasks/{id}/status.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING COMPLETED"`
}

// TaskResponse is the public representation of a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	UserID      int64  `json:"user_id"`
}

// ListTasksResponse wraps the task collection.
type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}
