package employee_test

import (
	"context"
	"errors"
	"testing"

	"go-dispatch/internal/audit"
	"go-dispatch/internal/authz"
	"go-dispatch/internal/employee"
	employeeerrors "go-dispatch/internal/employee/errors"
	"go-dispatch/internal/shared/apperror"
	"go-dispatch/internal/storage"

	"github.com/stretchr/testify/assert"
)

type serviceDeps struct {
	service   employee.Service
	repo      employee.Repository
	auditRepo audit.Repository
}

func setupService(t *testing.T) *serviceDeps {
	t.Helper()

	store := storage.NewMemory()
	repo := employee.NewRepository(store)
	auditRepo := audit.NewRepository(store)

	gate, err := authz.NewService()
	assert.NoError(t, err)

	svc := employee.NewService(repo, gate, audit.NewRecorder(auditRepo))
	return &serviceDeps{service: svc, repo: repo, auditRepo: auditRepo}
}

func seedAdmin(t *testing.T, deps *serviceDeps, id, username string, role employee.Role) {
	t.Helper()
	ctx := context.Background()
	employees := deps.repo.List(ctx, "")
	employees = append(employees, employee.Employee{
		ID:       id,
		Username: username,
		Role:     role,
		IsActive: true,
	})
	deps.repo.Save(ctx, "", employees)
}

func auditActions(ctx context.Context, repo audit.Repository) []audit.Action {
	var actions []audit.Action
	for _, e := range repo.List(ctx) {
		actions = append(actions, e.Action)
	}
	return actions
}

func TestService_ResolveRequester(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)

	t.Run("empty id is unauthorized", func(t *testing.T) {
		_, err := deps.service.ResolveRequester(ctx, "", "")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("super admin id short-circuits", func(t *testing.T) {
		req, err := deps.service.ResolveRequester(ctx, employee.SuperAdminID, "")
		assert.NoError(t, err)
		assert.Equal(t, "Super Admin", req.Username)
		assert.Equal(t, employee.RoleSuperAdmin, req.Role)
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		_, err := deps.service.ResolveRequester(ctx, "ghost", "")
		assert.ErrorIs(t, err, employeeerrors.ErrRequesterUnknown)
	})

	t.Run("tenant record resolves when tenant context present", func(t *testing.T) {
		deps.repo.Save(ctx, "acme", []employee.Employee{
			{ID: "t1", Username: "scoped", Role: employee.RoleAdmin},
		})

		req, err := deps.service.ResolveRequester(ctx, "t1", "acme")
		assert.NoError(t, err)
		assert.Equal(t, "scoped", req.Username)

		// Without the tenant header the same id is invisible.
		_, err = deps.service.ResolveRequester(ctx, "t1", "")
		assert.ErrorIs(t, err, employeeerrors.ErrRequesterUnknown)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("super admin creates a worker", func(t *testing.T) {
		deps := setupService(t)

		res, err := deps.service.Create(ctx, employee.SuperAdminID, "", employee.CreateEmployeeRequest{
			Username: "newworker",
			Password: "secret123",
			Role:     employee.RoleWorker,
			FullName: "New Worker",
			Email:    "worker@example.com",
		})

		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.NotEmpty(t, res.Employee.ID)
		assert.True(t, res.Employee.IsActive)
		assert.Equal(t, employee.SuperAdminID, res.Employee.CreatedBy)

		stored := deps.repo.List(ctx, "")
		assert.Len(t, stored, 1)
		assert.Equal(t, employee.HashPassword("secret123"), stored[0].PasswordHash)

		assert.Contains(t, auditActions(ctx, deps.auditRepo), audit.ActionUserCreated)
	})

	t.Run("credential ledger records plaintext newest first", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(ctx, employee.SuperAdminID, "", employee.CreateEmployeeRequest{
			Username: "first", Password: "pw-first1", Role: employee.RoleWorker,
			FullName: "First", Email: "first@example.com",
		})
		assert.NoError(t, err)
		_, err = deps.service.Create(ctx, employee.SuperAdminID, "", employee.CreateEmployeeRequest{
			Username: "second", Password: "pw-second1", Role: employee.RoleWorker,
			FullName: "Second", Email: "second@example.com",
		})
		assert.NoError(t, err)

		entries := deps.repo.Credentials(ctx, "")
		assert.Len(t, entries, 2)
		assert.Equal(t, "second", entries[0].Username)
		assert.Equal(t, "pw-second1", entries[0].Password)
		assert.Equal(t, employee.SuperAdminID, entries[0].CreatedByID)
	})

	t.Run("legacy employee role is stored as worker", func(t *testing.T) {
		deps := setupService(t)

		res, err := deps.service.Create(ctx, employee.SuperAdminID, "", employee.CreateEmployeeRequest{
			Username: "legacy", Password: "secret123", Role: "employee",
			FullName: "Legacy", Email: "legacy@example.com",
		})
		assert.NoError(t, err)
		assert.Equal(t, employee.RoleWorker, res.Employee.Role)
	})

	t.Run("duplicate username is a conflict regardless of case", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "Boss", employee.RoleAdmin)

		_, err := deps.service.Create(ctx, "a1", "", employee.CreateEmployeeRequest{
			Username: "bOSS", Password: "secret123", Role: employee.RoleWorker,
			FullName: "Impostor", Email: "imp@example.com",
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})

	t.Run("worker may not create accounts", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "w1", "grunt", employee.RoleWorker)

		_, err := deps.service.Create(ctx, "w1", "", employee.CreateEmployeeRequest{
			Username: "sneaky", Password: "secret123", Role: employee.RoleWorker,
			FullName: "Sneaky", Email: "sneaky@example.com",
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
		assert.Equal(t, "Only administrators can create new users", appErr.Message)
		assert.Empty(t, deps.repo.List(ctx, "")[1:], "no account should have been added")
	})

	t.Run("explicit permissions override the role defaults", func(t *testing.T) {
		deps := setupService(t)

		res, err := deps.service.Create(ctx, employee.SuperAdminID, "", employee.CreateEmployeeRequest{
			Username: "custom", Password: "secret123", Role: employee.RoleWorker,
			FullName: "Custom", Email: "custom@example.com",
			Permissions: &employee.Permissions{CanDeleteData: true},
		})
		assert.NoError(t, err)
		assert.True(t, res.Employee.Permissions.CanDeleteData)
		assert.False(t, res.Employee.Permissions.CanViewReports)
	})

	t.Run("tenant scoped create lands in the tenant namespace", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Create(ctx, employee.SuperAdminID, "acme", employee.CreateEmployeeRequest{
			Username: "tenantworker", Password: "secret123", Role: employee.RoleWorker,
			FullName: "Tenant Worker", Email: "tw@example.com",
		})
		assert.NoError(t, err)
		assert.Len(t, deps.repo.List(ctx, "acme"), 1)
		assert.Empty(t, deps.repo.List(ctx, ""))
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupService(t)

		_, err := deps.service.Update(ctx, employee.SuperAdminID, "", "ghost", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("admin cannot update another admin", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedAdmin(t, deps, "a2", "otherboss", employee.RoleAdmin)

		active := false
		_, err := deps.service.Update(ctx, "a1", "", "a2", employee.UpdateEmployeeRequest{IsActive: &active})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeForbidden, appErr.Code)
		assert.Equal(t, "You cannot update administrator accounts", appErr.Message)
	})

	t.Run("super admin updates an admin", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)

		name := "Renamed Boss"
		res, err := deps.service.Update(ctx, employee.SuperAdminID, "", "a1", employee.UpdateEmployeeRequest{
			FullName: &name,
		})
		assert.NoError(t, err)
		assert.Equal(t, "Renamed Boss", res.Employee.FullName)
	})

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedAdmin(t, deps, "w1", "worker", employee.RoleWorker)

		phone := "5551234"
		res, err := deps.service.Update(ctx, "a1", "", "w1", employee.UpdateEmployeeRequest{Phone: &phone})
		assert.NoError(t, err)
		assert.Equal(t, "5551234", res.Employee.Phone)
		assert.Equal(t, "worker", res.Employee.Username)
		assert.True(t, res.Employee.IsActive)
	})

	t.Run("username change collides case-insensitively", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedAdmin(t, deps, "w1", "alpha", employee.RoleWorker)
		seedAdmin(t, deps, "w2", "beta", employee.RoleWorker)

		taken := "ALPHA"
		_, err := deps.service.Update(ctx, "a1", "", "w2", employee.UpdateEmployeeRequest{Username: &taken})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.CodeConflict, appErr.Code)
	})

	t.Run("renaming only the casing of your own username is allowed", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedAdmin(t, deps, "w1", "alpha", employee.RoleWorker)

		recased := "Alpha"
		res, err := deps.service.Update(ctx, "a1", "", "w1", employee.UpdateEmployeeRequest{Username: &recased})
		assert.NoError(t, err)
		assert.Equal(t, "alpha", res.Employee.Username, "same name modulo case is not applied")
	})

	t.Run("password change rehashes and audits", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedAdmin(t, deps, "w1", "worker", employee.RoleWorker)

		pw := "newpassword1"
		_, err := deps.service.Update(ctx, "a1", "", "w1", employee.UpdateEmployeeRequest{Password: &pw})
		assert.NoError(t, err)

		for _, e := range deps.repo.List(ctx, "") {
			if e.ID == "w1" {
				assert.Equal(t, employee.HashPassword("newpassword1"), e.PasswordHash)
			}
		}

		actions := auditActions(ctx, deps.auditRepo)
		assert.Contains(t, actions, audit.ActionUserUpdated)
		assert.Contains(t, actions, audit.ActionPasswordChanged)
	})
}

func TestService_CredentialLogs(t *testing.T) {
	ctx := context.Background()

	seedCredentials := func(deps *serviceDeps) {
		deps.repo.SaveCredentials(ctx, "", []employee.CredentialLogEntry{
			{ID: "c1", Username: "one", CreatedByID: employee.SuperAdminID},
			{ID: "c2", Username: "two", CreatedByID: "a1"},
			{ID: "c3", Username: "three", CreatedByID: "a1"},
		})
	}

	t.Run("super admin sees every entry", func(t *testing.T) {
		deps := setupService(t)
		seedCredentials(deps)

		entries, err := deps.service.CredentialLogs(ctx, employee.SuperAdminID, "")
		assert.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("admin sees only entries they created", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)
		seedCredentials(deps)

		entries, err := deps.service.CredentialLogs(ctx, "a1", "")
		assert.NoError(t, err)
		assert.Len(t, entries, 2)
		for _, e := range entries {
			assert.Equal(t, "a1", e.CreatedByID)
		}
	})

	t.Run("worker is forbidden", func(t *testing.T) {
		deps := setupService(t)
		seedAdmin(t, deps, "w1", "grunt", employee.RoleWorker)

		_, err := deps.service.CredentialLogs(ctx, "w1", "")
		assert.ErrorIs(t, err, employeeerrors.ErrCredentialLogsForbidden)
	})
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	deps := setupService(t)
	seedAdmin(t, deps, "a1", "boss", employee.RoleAdmin)

	res, err := deps.service.List(ctx, "")
	assert.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, "boss", res[0].Username)
}
