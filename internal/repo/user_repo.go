package repo

import (
	"context"

	dom "github.com/jose-wolf/task-api/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides user persistence.
type UserRepo interface {
	Create(ctx context.Context, username, email string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByEmail(ctx context.Context, email string) (dom.User, error)
	List(ctx context.Context) ([]dom.User, error)
	Update(ctx context.Context, u dom.User) (dom.User, error)
	Delete(ctx context.Context, id int64) error
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it with the assigned id.
func (r *PGUserRepo) Create(ctx context.Context, username, email string) (dom.User, error) {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, username, email).Scan(
		&u.ID, &u.Username, &u.Email, &u.CreatedAt,
	)
	return u, err
}

// GetByID returns the user by id.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}

// ExistsByID reports whether a user with the given id exists.
func (r *PGUserRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		id,
	).Scan(&exists)
	return exists, err
}

// GetByUsername returns the user by exact username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}

// GetByEmail returns the user by exact email.
func (r *PGUserRepo) GetByEmail(ctx context.Context, email string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT id, username, email, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt)
	return u, err
}

// List returns all users.
func (r *PGUserRepo) List(ctx context.Context) ([]dom.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, username, email, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.User
	for rows.Next() {
		var u dom.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update overwrites username and email of an existing user.
func (r *PGUserRepo) Update(ctx context.Context, u dom.User) (dom.User, error) {
	query := `
		UPDATE users SET username = $2, email = $3
		WHERE id = $1
		RETURNING id, username, email, created_at`
	var out dom.User
	err := r.db.QueryRow(ctx, query, u.ID, u.Username, u.Email).Scan(
		&out.ID, &out.Username, &out.Email, &out.CreatedAt,
	)
	return out, err
}

// Delete removes the user. Owned tasks go with it via the FK cascade.
func (r *PGUserRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}
