package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	dom "github.com/jose-wolf/task-api/internal/domain"
	"github.com/jose-wolf/task-api/internal/repo"

	"github.com/jackc/pgx/v5"
)

// TaskService owns the task lifecycle. It depends on the user repo as well,
// because every task must reference an existing user.
type TaskService struct {
	tasks repo.TaskRepo
	users repo.UserRepo
}

// NewTaskService returns a new TaskService.
func NewTaskService(tasks repo.TaskRepo, users repo.UserRepo) *TaskService {
	return &TaskService{tasks: tasks, users: users}
}

// Create persists a new task bound to an existing user. Status is always
// PENDING at creation; there is no way for the caller to override it.
func (s *TaskService) Create(ctx context.Context, title, description string, userID int64) (dom.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateTaskFields(title, description); err != nil {
		return dom.Task{}, err
	}
	if userID <= 0 {
		return dom.Task{}, fmt.Errorf("user id is required: %w", ErrInvalidInput)
	}

	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return dom.Task{}, err
	}
	if !exists {
		return dom.Task{}, fmt.Errorf("user not found with id %d: %w", userID, ErrNotFound)
	}

	return s.tasks.Create(ctx, dom.Task{
		Title:       title,
		Description: description,
		Status:      dom.StatusPending,
		UserID:      userID,
	})
}

// ListAll returns every task. Zero tasks is an error, not an empty list.
func (s *TaskService) ListAll(ctx context.Context) ([]dom.Task, error) {
	tasks, err := s.tasks.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks registered: %w", ErrNotFound)
	}
	return tasks, nil
}

// ListByUser returns the tasks owned by the given user. The user must exist,
// and owning zero tasks is reported as not found as well.
func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]dom.Task, error) {
	exists, err := s.users.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("user not found with id %d: %w", userID, ErrNotFound)
	}
	tasks, err := s.tasks.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, fmt.Errorf("no tasks found for user %d: %w", userID, ErrNotFound)
	}
	return tasks, nil
}

// Update overwrites title and description unconditionally. Status and owner
// are untouched. Unlike user update, this is a full replace, not a patch.
func (s *TaskService) Update(ctx context.Context, id int64, title, description string) (dom.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if err := validateTaskFields(title, description); err != nil {
		return dom.Task{}, err
	}

	t, err := s.tasks.Update(ctx, id, title, description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, fmt.Errorf("task not found with id %d: %w", id, ErrNotFound)
		}
		return dom.Task{}, err
	}
	return t, nil
}

// UpdateStatus sets the task status. Both directions are allowed, including
// COMPLETED back to PENDING.
func (s *TaskService) UpdateStatus(ctx context.Context, id int64, status string) (dom.Task, error) {
	st, ok := dom.ParseTaskStatus(strings.TrimSpace(status))
	if !ok {
		return dom.Task{}, fmt.Errorf("status must be PENDING or COMPLETED, got %q: %w", status, ErrInvalidInput)
	}

	t, err := s.tasks.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, fmt.Errorf("task not found with id %d: %w", id, ErrNotFound)
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Delete removes the task by id. The owning user is not affected.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("task not found with id %d: %w", id, ErrNotFound)
		}
		return err
	}
	return s.tasks.Delete(ctx, t.ID)
}

func validateTaskFields(title, description string) error {
	if title == "" {
		return fmt.Errorf("title is required: %w", ErrInvalidInput)
	}
	if len(title) > dom.MaxTitleLen {
		return fmt.Errorf("title must be at most %d characters: %w", dom.MaxTitleLen, ErrInvalidInput)
	}
	if description == "" {
		return fmt.Errorf("description is required: %w", ErrInvalidInput)
	}
	if len(description) > dom.MaxDescriptionLen {
		return fmt.Errorf("description must be at most %d characters: %w", dom.MaxDescriptionLen, ErrInvalidInput)
	}
	return nil
}
