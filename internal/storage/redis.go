package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis adapts a redis client to the Store contract. Backend failures are
// logged and degrade to the same missing-key/no-op behavior as Memory, so
// callers see one contract regardless of backend.
type Redis struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedis(rdb *redis.Client, logger ...*zap.Logger) *Redis {
	l := zap.L().Named("storage.redis")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("storage.redis")
	}
	return &Redis{rdb: rdb, logger: l}
}

func (r *Redis) Get(ctx context.Context, key string) (string, bool) {
	v, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.Warn("get failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (r *Redis) Set(ctx context.Context, key, value string) {
	if err := r.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		r.logger.Error("set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Delete(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.logger.Warn("delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Redis) Has(ctx context.Context, key string) bool {
	n, err := r.rdb.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Warn("exists failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return n > 0
}

func (r *Redis) Keys(ctx context.Context) []string {
	keys, err := r.rdb.Keys(ctx, "*").Result()
	if err != nil {
		r.logger.Warn("keys failed", zap.Error(err))
		return nil
	}
	return keys
}

func (r *Redis) Clear(ctx context.Context) {
	if err := r.rdb.FlushDB(ctx).Err(); err != nil {
		r.logger.Error("clear failed", zap.Error(err))
	}
}
