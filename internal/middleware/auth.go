package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "travelhub/internal/pkg/jwt"
	"travelhub/internal/pkg/response"
)

// TokenDenylist answers whether an access token was revoked by logout.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, token string) bool
}

// Auth validates the bearer token and stores user_id/role on the context.
// Anything short of a valid, non-revoked token is an absent session and
// yields 401: a malformed or corrupt token must never escalate further.
func Auth(jwt *jwtsvc.Service, denylist TokenDenylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if denylist != nil && denylist.IsRevoked(c.Request.Context(), tokenStr) {
			abortUnauthorized(c, "Token has been revoked")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", tokenStr)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, message string) {
	response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
	c.Abort()
}
