package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amitk/attendance/internal/app/models"
	"github.com/amitk/attendance/internal/pkg/auth"
)

func setupProtectedRouter(t *testing.T, jwtService *auth.JWTService) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handlerRan := false
	router := gin.New()
	router.Use(NewAuthMiddleware(jwtService).JWTAuth())
	router.GET("/protected", func(c *gin.Context) {
		handlerRan = true
		userID, _ := c.Get("userID")
		username, _ := c.Get("username")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "username": username})
	})
	return router, &handlerRan
}

func newMiddlewareJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "attendance.api",
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, handlerRan := setupProtectedRouter(t, newMiddlewareJWTService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestJWTAuthTamperedToken(t *testing.T) {
	jwtService := newMiddlewareJWTService()
	router, handlerRan := setupProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Username: "amit"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token[:len(token)-2]+"xx")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: -time.Minute,
		TokenIssuer:    "attendance.api",
	})
	router, handlerRan := setupProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Username: "amit"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *handlerRan)
	assert.Contains(t, w.Body.String(), "AUTH_003")
}

func TestJWTAuthValidToken(t *testing.T) {
	jwtService := newMiddlewareJWTService()
	router, handlerRan := setupProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 7, Username: "amit"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *handlerRan)
	assert.Contains(t, w.Body.String(), `"username":"amit"`)
}
