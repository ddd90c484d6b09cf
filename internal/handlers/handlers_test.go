package handlers_test

import (
	"context"
	"time"

	dom "github.com/jose-wolf/task-api/internal/domain"
	"github.com/jose-wolf/task-api/internal/handlers"
	"github.com/jose-wolf/task-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// In-memory repos so handler tests run the real services end to end without
// Postgres. Misses surface as pgx.ErrNoRows, matching the pgx repos.

type memUserRepo struct {
	seq     int64
	users   map[int64]dom.User
	cascade *memTaskRepo
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]dom.User{}}
}

func (r *memUserRepo) Create(_ context.Context, username, email string) (dom.User, error) {
	r.seq++
	u := dom.User{ID: r.seq, Username: username, Email: email, CreatedAt: time.Now()}
	r.users[u.ID] = u
	return u, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := r.users[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

func (r *memUserRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *memUserRepo) List(_ context.Context) ([]dom.User, error) {
	var list []dom.User
	for _, u := range r.users {
		list = append(list, u)
	}
	return list, nil
}

func (r *memUserRepo) Update(_ context.Context, u dom.User) (dom.User, error) {
	if _, ok := r.users[u.ID]; !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	r.users[u.ID] = u
	return u, nil
}

// Delete also removes owned tasks when wired to a memTaskRepo, mirroring the
// ON DELETE CASCADE the real schema provides.
func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	if r.cascade != nil {
		for tid, t := range r.cascade.tasks {
			if t.UserID == id {
				delete(r.cascade.tasks, tid)
			}
		}
	}
	return nil
}

type memTaskRepo struct {
	seq   int64
	tasks map[int64]dom.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[int64]dom.Task{}}
}

func (r *memTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.seq++
	t.ID = r.seq
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.tasks[t.ID] = t
	return t, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id int64) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *memTaskRepo) ListAll(_ context.Context) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		list = append(list, t)
	}
	return list, nil
}

func (r *memTaskRepo) ListByUserID(_ context.Context, userID int64) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

func (r *memTaskRepo) Update(_ context.Context, id int64, title, description string) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Title = title
	t.Description = description
	t.UpdatedAt = time.Now()
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id int64, status dom.TaskStatus) (dom.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	r.tasks[id] = t
	return t, nil
}

func (r *memTaskRepo) Delete(_ context.Context, id int64) error {
	delete(r.tasks, id)
	return nil
}

// newTestRouter wires real services over the in-memory repos behind the same
// routes the app registers.
func newTestRouter() (*gin.Engine, *memUserRepo, *memTaskRepo) {
	gin.SetMode(gin.TestMode)

	users := newMemUserRepo()
	tasks := newMemTaskRepo()
	users.cascade = tasks

	userHandler := handlers.NewUserHandler(service.NewUserService(users))
	taskHandler := handlers.NewTaskHandler(service.NewTaskService(tasks, users))

	r := gin.New()
	api := r.Group("/api/v1")

	api.POST("/users", userHandler.Create)
	api.GET("/users", userHandler.List)
	api.GET("/users/search", userHandler.GetByUsername)
	api.GET("/users/search/email", userHandler.GetByEmail)
	api.PATCH("/users/:id", userHandler.Update)
	api.DELETE("/users/:id", userHandler.Delete)

	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks", taskHandler.List)
	api.GET("/tasks/user/:userId", taskHandler.ListByUser)
	api.PUT("/tasks/:id", taskHandler.Update)
	api.PATCH("/tasks/:id/status", taskHandler.UpdateStatus)
	api.DELETE("/tasks/:id", taskHandler.Delete)

	return r, users, tasks
}
