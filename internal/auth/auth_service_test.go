package auth_test

import (
	"context"
	"testing"

	"go-dispatch/internal/audit"
	"go-dispatch/internal/auth"
	"go-dispatch/internal/employee"
	"go-dispatch/internal/shared/apperror"
	"go-dispatch/internal/storage"

	"github.com/stretchr/testify/assert"
)

type authDeps struct {
	service   auth.Service
	repo      employee.Repository
	auditRepo audit.Repository
}

func setupAuth(t *testing.T) *authDeps {
	t.Helper()

	store := storage.NewMemory()
	repo := employee.NewRepository(store)
	auditRepo := audit.NewRepository(store)

	svc := auth.NewService(repo, audit.NewRecorder(auditRepo))
	return &authDeps{service: svc, repo: repo, auditRepo: auditRepo}
}

func seedAccount(deps *authDeps, tenantID string, e employee.Employee) {
	ctx := context.Background()
	employees := deps.repo.List(ctx, tenantID)
	deps.repo.Save(ctx, tenantID, append(employees, e))
}

func lastAudit(ctx context.Context, repo audit.Repository) audit.Entry {
	entries := repo.List(ctx)
	if len(entries) == 0 {
		return audit.Entry{}
	}
	return entries[len(entries)-1]
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	worker := employee.Employee{
		ID:           "w1",
		Username:     "elena",
		PasswordHash: employee.HashPassword("bacon"),
		Role:         employee.RoleWorker,
		IsActive:     true,
	}

	t.Run("success sets last login and audits", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "", worker)

		res, err := deps.service.Login(ctx, "", auth.LoginRequest{Username: "elena", Password: "bacon"})
		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "Login successful", res.Message)
		assert.NotNil(t, res.User)
		assert.Equal(t, "w1", res.User.ID)
		assert.NotNil(t, res.User.LastLogin)

		stored := deps.repo.List(ctx, "")
		assert.NotNil(t, stored[0].LastLogin)

		entry := lastAudit(ctx, deps.auditRepo)
		assert.Equal(t, audit.ActionLoginSuccess, entry.Action)
		assert.Equal(t, "w1", entry.UserID)
	})

	t.Run("username match is case-insensitive", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "", worker)

		res, err := deps.service.Login(ctx, "", auth.LoginRequest{Username: "ELENA", Password: "bacon"})
		assert.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("wrong password is a soft failure", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "", worker)

		res, err := deps.service.Login(ctx, "", auth.LoginRequest{Username: "elena", Password: "wrong"})
		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid username or password", res.Message)
		assert.Nil(t, res.User)

		assert.Equal(t, audit.ActionLoginFailed, lastAudit(ctx, deps.auditRepo).Action)
	})

	t.Run("unknown username gets the same message", func(t *testing.T) {
		deps := setupAuth(t)

		res, err := deps.service.Login(ctx, "", auth.LoginRequest{Username: "ghost", Password: "whatever"})
		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "Invalid username or password", res.Message)
	})

	t.Run("deactivated account", func(t *testing.T) {
		deps := setupAuth(t)
		inactive := worker
		inactive.IsActive = false
		seedAccount(deps, "", inactive)

		res, err := deps.service.Login(ctx, "", auth.LoginRequest{Username: "elena", Password: "bacon"})
		assert.NoError(t, err)
		assert.False(t, res.Success)
		assert.Equal(t, "This account has been deactivated", res.Message)

		// Last login stays untouched on a rejected attempt.
		assert.Nil(t, deps.repo.List(ctx, "")[0].LastLogin)
	})

	t.Run("body tenant overrides the header scope", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "acme", worker)

		res, err := deps.service.Login(ctx, "other", auth.LoginRequest{
			Username: "elena", Password: "bacon", TenantID: "acme",
		})
		assert.NoError(t, err)
		assert.True(t, res.Success)
	})

	t.Run("response never carries the password hash", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "", worker)

		res, _ := deps.service.Login(ctx, "", auth.LoginRequest{Username: "elena", Password: "bacon"})
		assert.NotNil(t, res.User)
		// EmployeeResponse has no hash field; spot-check the identity data.
		assert.Equal(t, "elena", res.User.Username)
		assert.Equal(t, employee.RoleWorker, res.User.Role)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("requires an identity", func(t *testing.T) {
		deps := setupAuth(t)

		_, err := deps.service.Logout(ctx, "", "")
		assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	})

	t.Run("records the audit event with the resolved username", func(t *testing.T) {
		deps := setupAuth(t)
		seedAccount(deps, "", employee.Employee{ID: "w1", Username: "elena", IsActive: true})

		res, err := deps.service.Logout(ctx, "w1", "")
		assert.NoError(t, err)
		assert.True(t, res.Success)

		entry := lastAudit(ctx, deps.auditRepo)
		assert.Equal(t, audit.ActionLogout, entry.Action)
		assert.Equal(t, "elena", entry.Username)
	})

	t.Run("super admin logs out by display name", func(t *testing.T) {
		deps := setupAuth(t)

		_, err := deps.service.Logout(ctx, employee.SuperAdminID, "")
		assert.NoError(t, err)
		assert.Equal(t, "Super Admin", lastAudit(ctx, deps.auditRepo).Username)
	})

	t.Run("unknown id still succeeds", func(t *testing.T) {
		deps := setupAuth(t)

		res, err := deps.service.Logout(ctx, "stale-token-id", "")
		assert.NoError(t, err)
		assert.True(t, res.Success)
		assert.Equal(t, "stale-token-id", lastAudit(ctx, deps.auditRepo).Username)
	})
}
