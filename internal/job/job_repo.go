package job

import (
	"context"

	"go-dispatch/internal/storage"
)

// Key layout mirrors the employee store: global requests live under
// "service_requests", tenant namespaces use the shorter "requests" leaf.
const (
	globalRequestsKey = "service_requests"
	tenantRequestsKey = "requests"
	mileageLogsKey    = "mileage_logs"
)

//go:generate mockgen -source=job_repo.go -destination=mock/job_repo_mock.go -package=mock
type Repository interface {
	ListRequests(ctx context.Context, tenantID string) []ServiceRequest
	SaveRequests(ctx context.Context, tenantID string, requests []ServiceRequest)
	ListMileageLogs(ctx context.Context, tenantID string) []MileageLogEntry
	SaveMileageLogs(ctx context.Context, tenantID string, entries []MileageLogEntry)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func requestsKey(tenantID string) string {
	if tenantID == "" {
		return globalRequestsKey
	}
	return tenantRequestsKey
}

func (r *repository) ListRequests(ctx context.Context, tenantID string) []ServiceRequest {
	scoped := storage.ForTenant(r.store, tenantID)
	requests := storage.GetJSON[[]ServiceRequest](ctx, scoped, requestsKey(tenantID))
	if requests == nil {
		return nil
	}
	return *requests
}

func (r *repository) SaveRequests(ctx context.Context, tenantID string, requests []ServiceRequest) {
	scoped := storage.ForTenant(r.store, tenantID)
	storage.SetJSON(ctx, scoped, requestsKey(tenantID), requests)
}

func (r *repository) ListMileageLogs(ctx context.Context, tenantID string) []MileageLogEntry {
	scoped := storage.ForTenant(r.store, tenantID)
	entries := storage.GetJSON[[]MileageLogEntry](ctx, scoped, mileageLogsKey)
	if entries == nil {
		return nil
	}
	return *entries
}

func (r *repository) SaveMileageLogs(ctx context.Context, tenantID string, entries []MileageLogEntry) {
	scoped := storage.ForTenant(r.store, tenantID)
	storage.SetJSON(ctx, scoped, mileageLogsKey, entries)
}
