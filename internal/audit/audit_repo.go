package audit

import (
	"context"

	"go-dispatch/internal/storage"
)

const auditLogsKey = "audit_logs"

//go:generate mockgen -source=audit_repo.go -destination=mock/audit_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) []Entry
	Save(ctx context.Context, entries []Entry)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

// The audit ledger is global; tenant scoping never applies to it.
func (r *repository) List(ctx context.Context) []Entry {
	entries := storage.GetJSON[[]Entry](ctx, r.store, auditLogsKey)
	if entries == nil {
		return nil
	}
	return *entries
}

func (r *repository) Save(ctx context.Context, entries []Entry) {
	storage.SetJSON(ctx, r.store, auditLogsKey, entries)
}
