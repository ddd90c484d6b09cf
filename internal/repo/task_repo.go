package repo

import (
	"context"

	dom "github.com/jose-wolf/task-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, id int64) (dom.Task, error)
	ListAll(ctx context.Context) ([]dom.Task, error)
	ListByUserID(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, id int64, title, description string) (dom.Task, error)
	UpdateStatus(ctx context.Context, id int64, status dom.TaskStatus) (dom.Task, error)
	Delete(ctx context.Context, id int64) error
}

// PGTaskRepo implements TaskRepo with Postgres.
type PGTaskRepo struct {
	db *pgxpool.Pool
}

// NewPGTaskRepo returns a new PGTaskRepo.
func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (title, description, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, description, status, user_id, created_at, updated_at`
	var out dom.Task
	err := r.db.QueryRow(ctx, query, t.Title, t.Description, t.Status, t.UserID).Scan(
		&out.ID, &out.Title, &out.Description, &out.Status, &out.UserID,
		&out.CreatedAt, &out.UpdatedAt,
	)
	return out, err
}

func (r *PGTaskRepo) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks WHERE id = $1`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) ListAll(ctx context.Context) ([]dom.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) ListByUserID(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `
		SELECT id, title, description, status, user_id, created_at, updated_at
		FROM tasks WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		var t dom.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Update overwrites title and description; status and owner stay as they are.
func (r *PGTaskRepo) Update(ctx context.Context, id int64, title, description string) (dom.Task, error) {
	query := `
		UPDATE tasks SET title = $2, description = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, status, user_id, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, title, description).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) UpdateStatus(ctx context.Context, id int64, status dom.TaskStatus) (dom.Task, error) {
	query := `
		UPDATE tasks SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, title, description, status, user_id, created_at, updated_at`
	var t dom.Task
	err := r.db.QueryRow(ctx, query, id, status).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PGTaskRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}
