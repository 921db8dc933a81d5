package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"mortgage-engine/internal/config"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, method jwt.SigningMethod) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "tester",
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	protected := func(cfg config.AuthConfig) http.Handler {
		return AuthMiddleware(cfg, discardLogger())(okHandler())
	}

	t.Run("disabled auth passes everything through", func(t *testing.T) {
		handler := protected(config.AuthConfig{Enabled: false})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/calculations", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("valid bearer token is accepted", func(t *testing.T) {
		handler := protected(config.AuthConfig{Enabled: true, JWTSecret: testSecret})
		req := httptest.NewRequest(http.MethodPost, "/calculations", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, jwt.SigningMethodHS256))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		handler := protected(config.AuthConfig{Enabled: true, JWTSecret: testSecret})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/calculations", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		handler := protected(config.AuthConfig{Enabled: true, JWTSecret: testSecret})
		req := httptest.NewRequest(http.MethodPost, "/calculations", nil)
		req.Header.Set("Authorization", "Token abc123")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token signed with the wrong secret is rejected", func(t *testing.T) {
		handler := protected(config.AuthConfig{Enabled: true, JWTSecret: testSecret})
		req := httptest.NewRequest(http.MethodPost, "/calculations", nil)
		req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", jwt.SigningMethodHS256))
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
