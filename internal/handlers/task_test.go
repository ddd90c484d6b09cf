package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jose-wolf/task-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskHandler_Create(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)

	// A status supplied in the request body is ignored.
	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1,"status":"COMPLETED"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, int64(1), resp.UserID)
	assert.Equal(t, "Ler livro", resp.Title)
}

func TestTaskHandler_Create_UnknownOwner(t *testing.T) {
	r, _, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":999}`)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body dto.StandardError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Status)
	assert.Equal(t, "not found", body.Error)
}

func TestTaskHandler_Create_BadBody(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)

	w := doJSON(t, r, http.MethodPost, "/api/v1/tasks", `{"title":"Ler livro","user_id":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskHandler_List(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusNotFound, w.Code, "no tasks yet means 404, not 200 with []")

	doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1}`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListTasksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].UserID)
}

func TestTaskHandler_ListByUser(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)

	w := doJSON(t, r, http.MethodGet, "/api/v1/tasks/user/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "never-created user is 404, not an empty list")

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/user/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code, "zero tasks is 404, not an empty list")

	doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1}`)

	w = doJSON(t, r, http.MethodGet, "/api/v1/tasks/user/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListTasksResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Items, 1)
}

func TestTaskHandler_Update(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1}`)

	w := doJSON(t, r, http.MethodPut, "/api/v1/tasks/1",
		`{"title":"Novo título","description":"Nova descrição"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Novo título", resp.Title)
	assert.Equal(t, "PENDING", resp.Status)

	w = doJSON(t, r, http.MethodPut, "/api/v1/tasks/999",
		`{"title":"Novo","description":"Nova"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/v1/tasks/1", `{"title":"Só título"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, "description is required on full update")
}

func TestTaskHandler_UpdateStatus(t *testing.T) {
	r, _, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1}`)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/tasks/1/status", `{"status":"COMPLETED"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TaskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "COMPLETED", resp.Status)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/1/status", `{"status":"PENDING"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/1/status", `{"status":"DONE"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/v1/tasks/999/status", `{"status":"PENDING"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTaskHandler_Delete(t *testing.T) {
	r, users, _ := newTestRouter()
	doJSON(t, r, http.MethodPost, "/api/v1/users", `{"username":"Teste","email":"teste@gmail.com"}`)
	doJSON(t, r, http.MethodPost, "/api/v1/tasks",
		`{"title":"Ler livro","description":"Continuar leitura","user_id":1}`)

	w := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/v1/tasks/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())

	// Deleting a task does not touch the owner.
	assert.Len(t, users.users, 1)
}
