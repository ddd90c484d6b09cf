package handlers

import (
	"net/http"

	dom "github.com/jose-wolf/task-api/internal/domain"
	"github.com/jose-wolf/task-api/internal/dto"
	"github.com/jose-wolf/task-api/internal/service"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	svc *service.TaskService
}

func NewTaskHandler(svc *service.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// Create godoc
// @Summary      Create a task for a user
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateTaskRequest  true  "Task body; status always starts PENDING"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.StandardError
// @Failure      404   {object}  dto.StandardError
// @Router       /tasks [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.Create(c.Request.Context(), req.Title, req.Description, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, taskToResponse(t))
}

// List godoc
// @Summary      List all tasks
// @Tags         tasks
// @Produce      json
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      404  {object}  dto.StandardError
// @Router       /tasks [get]
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(tasks)})
}

// ListByUser godoc
// @Summary      List the tasks owned by a user
// @Tags         tasks
// @Produce      json
// @Param        userId  path      int  true  "Owner user ID"
// @Success      200     {object}  dto.ListTasksResponse
// @Failure      400     {object}  dto.StandardError
// @Failure      404     {object}  dto.StandardError
// @Router       /tasks/user/{userId} [get]
func (h *TaskHandler) ListByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}
	tasks, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(tasks)})
}

// Update godoc
// @Summary      Replace title and description of a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "New title and description"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.StandardError
// @Failure      404   {object}  dto.StandardError
// @Router       /tasks/{id} [put]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.Update(c.Request.Context(), id, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// UpdateStatus godoc
// @Summary      Update the status of a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskStatusRequest  true  "New status"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.StandardError
// @Failure      404   {object}  dto.StandardError
// @Router       /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, taskToResponse(t))
}

// Delete godoc
// @Summary      Delete a task
// @Tags         tasks
// @Param        id   path  int  true  "Task ID"
// @Success      204
// @Failure      400  {object}  dto.StandardError
// @Failure      404  {object}  dto.StandardError
// @Router       /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func taskToResponse(t dom.Task) dto.TaskResponse {
	return dto.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		UserID:      t.UserID,
	}
}

func tasksToResponses(list []dom.Task) []dto.TaskResponse {
	out := make([]dto.TaskResponse, len(list))
	for i := range list {
		out[i] = taskToResponse(list[i])
	}
	return out
}
