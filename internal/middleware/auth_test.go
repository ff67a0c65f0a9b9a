package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	jwtsvc "travelhub/internal/pkg/jwt"
)

type fakeDenylist struct {
	revoked map[string]bool
}

func (f *fakeDenylist) IsRevoked(_ context.Context, token string) bool {
	return f.revoked[token]
}

func protectedRouter(jwt *jwtsvc.Service, denylist TokenDenylist) *gin.Engine {
	r := gin.New()
	r.Use(Auth(jwt, denylist))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64("user_id"),
			"role":    c.GetString("role"),
		})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwt.GenerateToken(42, "user")

	router := protectedRouter(jwt, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
	assert.Contains(t, w.Body.String(), "user")
}

func TestAuth_GarbageToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", time.Hour)

	router := protectedRouter(jwt, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestAuth_WrongSecret(t *testing.T) {
	signer := jwtsvc.New("secret-a", time.Hour)
	token, _ := signer.GenerateToken(42, "user")

	router := protectedRouter(jwtsvc.New("secret-b", time.Hour), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_NoHeader(t *testing.T) {
	router := protectedRouter(jwtsvc.New("secret", time.Hour), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_BasicSchemeRejected(t *testing.T) {
	router := protectedRouter(jwtsvc.New("secret", time.Hour), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_RevokedToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", time.Hour)
	token, _ := jwt.GenerateToken(42, "user")

	router := protectedRouter(jwt, &fakeDenylist{revoked: map[string]bool{token: true}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "revoked")
}

func TestAuth_ExpiredToken(t *testing.T) {
	jwt := jwtsvc.New("test-secret-123", -time.Minute)
	token, _ := jwt.GenerateToken(42, "user")

	router := protectedRouter(jwt, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
