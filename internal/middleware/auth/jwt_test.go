package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func createValidJWT(userID, email, role string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	})

	tokenString, _ := token.SignedString([]byte("test-secret"))
	return tokenString
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "test-secret",
		Logger:    logger,
		SkipPaths: []string{},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		user, err := GetUserFromContext(c)
		assert.NoError(t, err)
		assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", user.UserID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.Equal(t, "admin", user.Role)
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+createValidJWT("550e8400-e29b-41d4-a716-446655440000", "test@example.com", "admin"))
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_MissingAuthorizationHeader(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "test-secret",
		Logger:    logger,
		SkipPaths: []string{},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	// No Authorization header
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err) // Middleware handles the error response
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_AUTH_HEADER")
}

func TestJWTMiddleware_InvalidToken(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "test-secret",
		Logger:    logger,
		SkipPaths: []string{},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestJWTMiddleware_WrongSecretRejected(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "different-secret",
		Logger:    logger,
		SkipPaths: []string{},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+createValidJWT("user-1", "test@example.com", "user"))
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "test-secret",
		Logger:    logger,
		SkipPaths: []string{"/health", "/api/webhooks"},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Skipped path passes through without an Authorization header
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/nango", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_EmptySecretDisablesAuth(t *testing.T) {
	logger := zap.NewNop()

	config := JWTConfig{
		Secret:    "",
		Logger:    logger,
		SkipPaths: []string{},
	}

	e := echo.New()
	middleware := JWTMiddleware(config)

	handler := middleware(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	// No Authorization header and no secret configured
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)

	err := handler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
