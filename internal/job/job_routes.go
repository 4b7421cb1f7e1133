package job

import (
	"go-dispatch/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The request pipeline is public: field workers accept jobs before they ever
// authenticate against the employee store.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	requests := r.Group("/requests")
	requests.Use(middleware.TenantScope())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("/test-job",
			middleware.RateLimitByIP(1, 5),
			handler.CreateTestJob,
		)

		requests.POST("/:id/accept",
			middleware.RateLimitByIP(3, 10),
			handler.Accept,
		)

		requests.POST("/:id/round-trip",
			middleware.RateLimitByIP(3, 10),
			handler.RoundTrip,
		)

		requests.POST("/:id/mileage-log",
			middleware.RateLimitByIP(1, 5),
			handler.PostMileage,
		)
	}
}
