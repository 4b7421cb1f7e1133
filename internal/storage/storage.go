package storage

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// Store is the process-wide key-value surface every feature package persists
// through. Operations never return errors: a missing key reads as the zero
// value and backend failures degrade to no-ops (logged, not raised).
//
//go:generate mockgen -source=storage.go -destination=mock/storage_mock.go -package=mock
type Store interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
	Delete(ctx context.Context, key string)
	Has(ctx context.Context, key string) bool
	Keys(ctx context.Context) []string
	Clear(ctx context.Context)
}

// GetJSON reads and decodes the value at key. It returns nil when the key is
// absent or the stored value does not parse; a corrupt entry is treated the
// same as a missing one.
func GetJSON[T any](ctx context.Context, s Store, key string) *T {
	raw, ok := s.Get(ctx, key)
	if !ok || raw == "" {
		return nil
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		zap.L().Warn("storage: discarding unparseable value",
			zap.String("key", key),
			zap.Error(err),
		)
		return nil
	}
	return &v
}

// SetJSON encodes v and stores it at key.
func SetJSON[T any](ctx context.Context, s Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("storage: marshal failed, value not stored",
			zap.String("key", key),
			zap.Error(err),
		)
		return
	}
	s.Set(ctx, key, string(raw))
}
