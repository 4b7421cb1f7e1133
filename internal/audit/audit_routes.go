package audit

import (
	"go-dispatch/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	logs := r.Group("/audit-logs")
	logs.Use(middleware.BearerIdentity())
	logs.Use(middleware.ContextLogger(logger))
	{
		logs.GET("",
			middleware.RateLimitByUser(3, 10),
			handler.GetAuditLogs,
		)
	}
}
