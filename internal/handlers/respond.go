package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/jose-wolf/task-api/internal/dto"
	"github.com/jose-wolf/task-api/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto the HTTP error contract:
// NotFound -> 404, Conflict -> 409, invalid input -> 400, anything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.StandardError{
			Status:  http.StatusNotFound,
			Error:   "not found",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.StandardError{
			Status:  http.StatusConflict,
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.StandardError{
			Status:  http.StatusBadRequest,
			Error:   "invalid request",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.StandardError{
			Status:  http.StatusInternalServerError,
			Error:   "internal error",
			Message: err.Error(),
		})
	}
}

// respondBindError reports a malformed or invalid request body.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.StandardError{
		Status:  http.StatusBadRequest,
		Error:   "invalid request",
		Message: err.Error(),
	})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.StandardError{
			Status:  http.StatusBadRequest,
			Error:   "invalid request",
			Message: "invalid id",
		})
		return 0, false
	}
	return id, true
}
