package domain

import "time"

// Field limits enforced by the tasks table.
const (
	MaxTitleLen       = 150
	MaxDescriptionLen = 250
)

// TaskStatus is the lifecycle state of a task, stored as a string column.
type TaskStatus string

const (
	StatusPending   TaskStatus = "PENDING"
	StatusCompleted TaskStatus = "COMPLETED"
)

// ParseTaskStatus converts a wire value into a TaskStatus.
// Returns false for anything other than PENDING or COMPLETED.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch TaskStatus(s) {
	case StatusPending, StatusCompleted:
		return TaskStatus(s), true
	}
	return "", false
}

// Task is the domain entity for a unit of work owned by exactly one user.
// UserID is the foreign key to the owner; it never changes after creation.
type Task struct {
	ID          int64
	Title       string
	Description string
	Status      TaskStatus
	UserID      int64

	CreatedAt time.Time
	UpdatedAt time.Time
}
