package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go-dispatch/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestBearerIdentity(t *testing.T) {
	router := setupRouter()
	router.GET("/protected", middleware.BearerIdentity(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId":   c.GetString("user_id"),
			"tenantId": c.GetString("tenant_id"),
		})
	})

	t.Run("token becomes the user id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer super_admin_001")
		req.Header.Set("X-Tenant-ID", "acme")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "super_admin_001")
		assert.Contains(t, w.Body.String(), "acme")
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestTenantScope(t *testing.T) {
	router := setupRouter()
	router.GET("/public", middleware.TenantScope(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("tenant_id"))
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.Header.Set("X-Tenant-ID", "globex")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "globex", w.Body.String())
}

func TestRateLimitByUser(t *testing.T) {
	router := setupRouter()
	router.GET("/limited",
		func(c *gin.Context) { c.Set("user_id", c.GetHeader("X-Fake-User")) },
		middleware.RateLimitByUser(1, 2),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	hit := func(user string) int {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.Header.Set("X-Fake-User", user)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("burst then throttle", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("u1"))
		assert.Equal(t, http.StatusOK, hit("u1"))
		assert.Equal(t, http.StatusTooManyRequests, hit("u1"))
	})

	t.Run("buckets are per user", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit("u2"))
	})

	t.Run("anonymous requests pass through", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, hit(""))
		assert.Equal(t, http.StatusOK, hit(""))
		assert.Equal(t, http.StatusOK, hit(""))
	})
}

type fakeBootstrapper struct {
	err   error
	calls atomic.Int32
}

func (f *fakeBootstrapper) Ensure(ctx context.Context) error {
	f.calls.Add(1)
	return f.err
}

func TestSeedGate(t *testing.T) {
	t.Run("passes through on success", func(t *testing.T) {
		seeder := &fakeBootstrapper{}
		router := setupRouter()
		router.Use(middleware.SeedGate(seeder))
		router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int32(1), seeder.calls.Load())
	})

	t.Run("failure answers 503 before any handler", func(t *testing.T) {
		seeder := &fakeBootstrapper{err: errors.New("store down")}
		handlerRan := false

		router := setupRouter()
		router.Use(middleware.SeedGate(seeder))
		router.GET("/", func(c *gin.Context) { handlerRan = true })

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, handlerRan)
		assert.Contains(t, w.Body.String(), "SERVICE_UNAVAILABLE")
	})
}
