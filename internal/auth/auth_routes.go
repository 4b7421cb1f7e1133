package auth

import (
	"go-dispatch/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	group := r.Group("/auth")
	group.Use(middleware.TenantScope())
	group.Use(middleware.ContextLogger(logger))
	{
		// Login is public and the main brute-force surface, so it gets the
		// tightest IP bucket.
		group.POST("/login",
			middleware.RateLimitByIP(1, 5),
			handler.Login,
		)

		group.POST("/logout",
			middleware.BearerIdentity(),
			handler.Logout,
		)
	}
}
