package employee

import (
	"go-dispatch/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	employees := r.Group("/employees")
	employees.Use(middleware.BearerIdentity())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAll,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			handler.Create,
		)

		employees.PATCH("/:id",
			middleware.RateLimitByUser(0.5, 2),
			handler.Update,
		)
	}

	credentials := r.Group("/credential-logs")
	credentials.Use(middleware.BearerIdentity())
	credentials.Use(middleware.ContextLogger(logger))
	{
		credentials.GET("",
			middleware.RateLimitByUser(1, 5),
			handler.GetCredentialLogs,
		)
	}
}
