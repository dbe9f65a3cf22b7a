package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HarryCarrig/Trimmute/internal/config"
	"github.com/HarryCarrig/Trimmute/internal/middleware"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.BarberAuth(cfg), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func get(r *gin.Engine, auth string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBarberAuth(t *testing.T) {
	cfg := &config.Config{
		BarberAPIKey: "super-secret-key",
		JWTSecret:    "jwt-secret",
	}
	r := newRouter(cfg)

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer nope").Code)
	})

	t.Run("shared api key", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, get(r, "Bearer super-secret-key").Code)
	})

	t.Run("valid jwt", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":  float64(1),
			"role": "barber",
			"exp":  time.Now().Add(time.Hour).Unix(),
			"iat":  time.Now().Unix(),
		})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, get(r, "Bearer "+signed).Code)
	})

	t.Run("jwt signed with the wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": float64(1),
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("some-other-secret"))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+signed).Code)
	})

	t.Run("expired jwt", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": float64(1),
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte(cfg.JWTSecret))
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+signed).Code)
	})
}
