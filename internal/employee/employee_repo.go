package employee

import (
	"context"

	"go-dispatch/internal/storage"
)

// Key layout: the global scope keeps employees under "employees" while tenant
// namespaces use the shorter "users" leaf. Credential logs share one leaf name
// in both scopes.
const (
	globalEmployeesKey = "employees"
	tenantEmployeesKey = "users"
	credentialLogsKey  = "credential_logs"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, tenantID string) []Employee
	Save(ctx context.Context, tenantID string, employees []Employee)
	Credentials(ctx context.Context, tenantID string) []CredentialLogEntry
	SaveCredentials(ctx context.Context, tenantID string, entries []CredentialLogEntry)
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func employeesKey(tenantID string) string {
	if tenantID == "" {
		return globalEmployeesKey
	}
	return tenantEmployeesKey
}

func (r *repository) List(ctx context.Context, tenantID string) []Employee {
	scoped := storage.ForTenant(r.store, tenantID)
	employees := storage.GetJSON[[]Employee](ctx, scoped, employeesKey(tenantID))
	if employees == nil {
		return nil
	}
	return *employees
}

func (r *repository) Save(ctx context.Context, tenantID string, employees []Employee) {
	scoped := storage.ForTenant(r.store, tenantID)
	storage.SetJSON(ctx, scoped, employeesKey(tenantID), employees)
}

func (r *repository) Credentials(ctx context.Context, tenantID string) []CredentialLogEntry {
	scoped := storage.ForTenant(r.store, tenantID)
	entries := storage.GetJSON[[]CredentialLogEntry](ctx, scoped, credentialLogsKey)
	if entries == nil {
		return nil
	}
	return *entries
}

func (r *repository) SaveCredentials(ctx context.Context, tenantID string, entries []CredentialLogEntry) {
	scoped := storage.ForTenant(r.store, tenantID)
	storage.SetJSON(ctx, scoped, credentialLogsKey, entries)
}
