package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	dom "github.com/jose-wolf/task-api/internal/domain"
	"github.com/jose-wolf/task-api/internal/repo"
	"github.com/jose-wolf/task-api/internal/utils"

	"github.com/jackc/pgx/v5"
)

// UserService owns the user lifecycle: uniqueness of username and email,
// lookups, partial update and deletion (with task cascade at the store).
type UserService struct {
	repo repo.UserRepo
}

// NewUserService returns a new UserService.
func NewUserService(repo repo.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Create registers a new user. Username is checked for uniqueness first,
// then email; the DB unique constraints backstop concurrent creates.
func (s *UserService) Create(ctx context.Context, username, email string) (dom.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if err := validateUsername(username); err != nil {
		return dom.User{}, err
	}
	if err := validateEmail(email); err != nil {
		return dom.User{}, err
	}

	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return dom.User{}, fmt.Errorf("username %q is already taken: %w", username, ErrConflict)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return dom.User{}, fmt.Errorf("email %q already belongs to another account: %w", email, ErrConflict)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return dom.User{}, err
	}

	u, err := s.repo.Create(ctx, username, email)
	if err != nil {
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, fmt.Errorf("username or email already in use: %w", ErrConflict)
		}
		return dom.User{}, err
	}
	return u, nil
}

// List returns all users. Zero users is an error, not an empty list.
func (s *UserService) List(ctx context.Context) ([]dom.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, fmt.Errorf("no users registered: %w", ErrNotFound)
	}
	return users, nil
}

// GetByUsername returns the user with the exact username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	u, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, fmt.Errorf("user not found with username %q: %w", username, ErrNotFound)
		}
		return dom.User{}, err
	}
	return u, nil
}

// GetByEmail returns the user with the exact email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, fmt.Errorf("user not found with email %q: %w", email, ErrNotFound)
		}
		return dom.User{}, err
	}
	return u, nil
}

// Update changes username and/or email of an existing user. Blank fields are
// left untouched. Username is decided first, then email; the first conflict
// aborts the whole call, so nothing is persisted on a partial failure.
func (s *UserService) Update(ctx context.Context, id int64, username, email string) (dom.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, fmt.Errorf("user not found with id %d: %w", id, ErrNotFound)
		}
		return dom.User{}, err
	}

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username != "" {
		if err := validateUsername(username); err != nil {
			return dom.User{}, err
		}
		other, err := s.repo.GetByUsername(ctx, username)
		if err == nil && other.ID != id {
			return dom.User{}, fmt.Errorf("username %q is already taken: %w", username, ErrConflict)
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, err
		}
		u.Username = username
	}

	if email != "" {
		if err := validateEmail(email); err != nil {
			return dom.User{}, err
		}
		other, err := s.repo.GetByEmail(ctx, email)
		if err == nil && other.ID != id {
			return dom.User{}, fmt.Errorf("email %q already belongs to another account: %w", email, ErrConflict)
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, err
		}
		u.Email = email
	}

	out, err := s.repo.Update(ctx, u)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.User{}, fmt.Errorf("user not found with id %d: %w", id, ErrNotFound)
		}
		if utils.IsPGUniqueViolation(err) {
			return dom.User{}, fmt.Errorf("username or email already in use: %w", ErrConflict)
		}
		return dom.User{}, err
	}
	return out, nil
}

// Delete removes the user by id. All tasks owned by the user are removed by
// the ON DELETE CASCADE on tasks.user_id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("user not found with id %d: %w", id, ErrNotFound)
		}
		return err
	}
	return s.repo.Delete(ctx, u.ID)
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username is required: %w", ErrInvalidInput)
	}
	if len(username) > dom.MaxUsernameLen {
		return fmt.Errorf("username must be at most %d characters: %w", dom.MaxUsernameLen, ErrInvalidInput)
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required: %w", ErrInvalidInput)
	}
	if len(email) > dom.MaxEmailLen {
		return fmt.Errorf("email must be at most %d characters: %w", dom.MaxEmailLen, ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("email %q is not a valid address: %w", email, ErrInvalidInput)
	}
	return nil
}
