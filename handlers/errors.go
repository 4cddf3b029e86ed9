package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-directory/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// handleServiceError maps service errors to a status and an {"error": ...}
// body. Internal failures are logged and replaced with a generic message.
func handleServiceError(c *gin.Context, err error) {
	var status int
	switch {
	case errors.Is(err, models.ErrInternal):
		status = http.StatusInternalServerError
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, models.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	if status == http.StatusInternalServerError {
		zap.L().Error("Unhandled internal error", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatusJSON(status, gin.H{"error": "An unexpected internal error occurred"})
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// paramID parses a positive numeric path parameter, answering 400 otherwise.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
