package app

import (
	"os"

	"go-dispatch/internal/shared/connection"
	"go-dispatch/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp wires infrastructure, services and routes onto the router.
//
// The store is in-memory by default. Set REDIS_ADDR to back it with Redis so
// several instances share state.
func BuildApp(router *gin.Engine) error {
	logger := zap.L()

	var store storage.Store = storage.NewMemory()
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		logger.Info("Redis connection established", zap.String("addr", addr))
		store = storage.NewRedis(redisClient, logger)
	}

	return registerModules(router, store, logger)
}
