package middleware

import (
	"net/http"
	"strings"

	"location-production-backend/internal/config"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Origin, Content-Type, Accept, Authorization, X-Request-ID, X-User-ID"
)

// CORS answers preflight requests and sets the allow headers for configured origins.
// A "*" entry allows any origin.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool)
	allowAll := false
	if cfg != nil {
		for _, origin := range cfg.AllowedOrigins {
			origin = strings.TrimSpace(origin)
			if origin == "*" {
				allowAll = true
			}
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", corsAllowMethods)
			c.Header("Access-Control-Allow-Headers", corsAllowHeaders)
			c.Header("Access-Control-Expose-Headers", RequestIDHeader)
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
