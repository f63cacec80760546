package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDHeader names the acting user of a write request
const UserIDHeader = "X-User-ID"

// ActorKey is the gin context key holding the acting user
const ActorKey = "user_id"

// Actor reads the acting user from X-User-ID if present
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID := strings.TrimSpace(c.GetHeader(UserIDHeader)); userID != "" {
			c.Set(ActorKey, userID)
		}
		c.Next()
	}
}

// RequireActor rejects requests that do not name an acting user
func RequireActor() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ActorKey) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": UserIDHeader + " header is required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
