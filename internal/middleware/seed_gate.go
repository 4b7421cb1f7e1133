package middleware

import (
	"context"
	"net/http"

	"go-dispatch/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Bootstrapper is satisfied by seed.Seeder; defined locally so the middleware
// package does not depend on the seeding internals.
type Bootstrapper interface {
	Ensure(ctx context.Context) error
}

// SeedGate guarantees the baseline accounts exist before any handler runs.
// After the first success this is a cheap no-op on every request.
func SeedGate(seeder Bootstrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := seeder.Ensure(c.Request.Context()); err != nil {
			zap.L().Error("seed bootstrap failed", zap.Error(err))
			response.Error(c, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Service initialization failed", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
