package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelhub/internal/pkg/response"
)

// RequireRole gates a route group to one of the given roles. Runs after
// Auth, which put the role on the context.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(c *gin.Context) {
		role := c.GetString("role")
		if !allowed[role] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
