package handlers

import (
	"net/http"

	dom "github.com/jose-wolf/task-api/internal/domain"
	"github.com/jose-wolf/task-api/internal/dto"
	"github.com/jose-wolf/task-api/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Create godoc
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateUserRequest  true  "User body"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.StandardError
// @Failure      409   {object}  dto.StandardError
// @Router       /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.Create(c.Request.Context(), req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, userToResponse(u))
}

// List godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.ListUsersResponse
// @Failure      404  {object}  dto.StandardError
// @Router       /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListUsersResponse{Items: usersToResponses(users)})
}

// GetByUsername godoc
// @Summary      Find a user by username
// @Tags         users
// @Produce      json
// @Param        username  query     string  true  "Exact username"
// @Success      200       {object}  dto.UserResponse
// @Failure      404       {object}  dto.StandardError
// @Router       /users/search [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	u, err := h.svc.GetByUsername(c.Request.Context(), c.Query("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// GetByEmail godoc
// @Summary      Find a user by email
// @Tags         users
// @Produce      json
// @Param        email  query     string  true  "Exact email"
// @Success      200    {object}  dto.UserResponse
// @Failure      404    {object}  dto.StandardError
// @Router       /users/search/email [get]
func (h *UserHandler) GetByEmail(c *gin.Context) {
	u, err := h.svc.GetByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// Update godoc
// @Summary      Update username and/or email
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "User ID"
// @Param        body  body      dto.UpdateUserRequest  true  "Fields to change; blank fields are kept"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.StandardError
// @Failure      404   {object}  dto.StandardError
// @Failure      409   {object}  dto.StandardError
// @Router       /users/{id} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	u, err := h.svc.Update(c.Request.Context(), id, req.Username, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, userToResponse(u))
}

// Delete godoc
// @Summary      Delete a user and its tasks
// @Tags         users
// @Param        id   path  int  true  "User ID"
// @Success      204
// @Failure      400  {object}  dto.StandardError
// @Failure      404  {object}  dto.StandardError
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
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

func userToResponse(u dom.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func usersToResponses(list []dom.User) []dto.UserResponse {
	out := make([]dto.UserResponse, len(list))
	for i := range list {
		out[i] = userToResponse(list[i])
	}
	return out
}
