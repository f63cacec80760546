package handlers

import (
	"errors"
	"net/http"

	"location-production-backend/internal/api/middleware"
	apperrors "location-production-backend/internal/errors"
	"location-production-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
	Field string `json:"field,omitempty" example:"status"`
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationError
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Field: validationErr.Field})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseUUIDParam reads a path parameter as a UUID, writing a 400 on failure
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " format", Field: name})
		return uuid.Nil, false
	}
	return id, true
}

// actingUser prefers the X-User-ID header over a user named in the body
func actingUser(c *gin.Context, fromBody string) string {
	if userID := c.GetString(middleware.ActorKey); userID != "" {
		return userID
	}
	return fromBody
}
