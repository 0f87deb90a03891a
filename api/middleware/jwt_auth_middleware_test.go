package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shelfmate/shelfmate-server/internal/tokenutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JwtAuthMiddleware(secret))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(UserIDKey)})
	})
	return router
}

func TestJwtAuthMiddleware_MissingHeader(t *testing.T) {
	router := setupProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtAuthMiddleware_MalformedToken(t *testing.T) {
	router := setupProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := tokenutil.CreateAccessToken("64b0c8f2a1d3e4f5a6b7c8d9", "reader", "other-secret", 1)
	require.NoError(t, err)

	router := setupProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJwtAuthMiddleware_ValidToken(t *testing.T) {
	token, err := tokenutil.CreateAccessToken("64b0c8f2a1d3e4f5a6b7c8d9", "reader", secret, 1)
	require.NoError(t, err)

	router := setupProtectedRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "64b0c8f2a1d3e4f5a6b7c8d9")
}
