package authz_test

import (
	"testing"

	"go-dispatch/internal/authz"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_Matrix(t *testing.T) {
	svc, err := authz.NewService()
	assert.NoError(t, err)

	cases := []struct {
		name      string
		requester string
		target    string
		action    authz.Action
		allowed   bool
	}{
		{"super admin creates admin", authz.RoleSuperAdmin, authz.RoleAdmin, authz.ActionCreate, true},
		{"super admin updates admin", authz.RoleSuperAdmin, authz.RoleAdmin, authz.ActionUpdate, true},
		{"super admin updates super admin", authz.RoleSuperAdmin, authz.RoleSuperAdmin, authz.ActionUpdate, true},
		{"admin creates worker", authz.RoleAdmin, authz.RoleWorker, authz.ActionCreate, true},
		{"admin creates admin", authz.RoleAdmin, authz.RoleAdmin, authz.ActionCreate, true},
		{"admin updates worker", authz.RoleAdmin, authz.RoleWorker, authz.ActionUpdate, true},
		{"admin updates user", authz.RoleAdmin, authz.RoleUser, authz.ActionUpdate, true},
		{"admin updates admin", authz.RoleAdmin, authz.RoleAdmin, authz.ActionUpdate, false},
		{"admin updates super admin", authz.RoleAdmin, authz.RoleSuperAdmin, authz.ActionUpdate, false},
		{"worker creates worker", authz.RoleWorker, authz.RoleWorker, authz.ActionCreate, false},
		{"worker updates user", authz.RoleWorker, authz.RoleUser, authz.ActionUpdate, false},
		{"user creates user", authz.RoleUser, authz.RoleUser, authz.ActionCreate, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision, err := svc.Authorize(tc.requester, tc.target, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, decision.Allowed)
		})
	}
}

func TestAuthorize_DenyReasons(t *testing.T) {
	svc, err := authz.NewService()
	assert.NoError(t, err)

	t.Run("non-admin create", func(t *testing.T) {
		decision, _ := svc.Authorize(authz.RoleWorker, authz.RoleWorker, authz.ActionCreate)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "Only administrators can create new users", decision.Reason)
	})

	t.Run("non-admin update", func(t *testing.T) {
		decision, _ := svc.Authorize(authz.RoleUser, authz.RoleWorker, authz.ActionUpdate)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "Only administrators can update users", decision.Reason)
	})

	t.Run("admin blocked on admin target", func(t *testing.T) {
		decision, _ := svc.Authorize(authz.RoleAdmin, authz.RoleAdmin, authz.ActionUpdate)
		assert.False(t, decision.Allowed)
		assert.Equal(t, "You cannot update administrator accounts", decision.Reason)
	})

	t.Run("allowed decision carries no reason", func(t *testing.T) {
		decision, _ := svc.Authorize(authz.RoleSuperAdmin, authz.RoleAdmin, authz.ActionUpdate)
		assert.True(t, decision.Allowed)
		assert.Empty(t, decision.Reason)
	})
}
