package authz

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Role names as stored on employee records.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleWorker     = "worker"
	RoleUser       = "user"
)

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
)

// The policy model: subject is the requester's role, object is the role of
// the account being acted on. keyMatch lets a single super_admin rule cover
// everything.
const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && keyMatch(r.obj, p.obj) && keyMatch(r.act, p.act)
`

// Decision is an allow/deny plus a reason suitable for the error message.
type Decision struct {
	Allowed bool
	Reason  string
}

//go:generate mockgen -source=authz_service.go -destination=mock/authz_service_mock.go -package=mock
type Service interface {
	Authorize(requesterRole, targetRole string, action Action) (Decision, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService() (Service, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	// super_admin may do anything to anyone; a plain admin may create any
	// account but update only non-admin ones.
	policies := [][]string{
		{RoleSuperAdmin, "*", "*"},
		{RoleAdmin, "*", string(ActionCreate)},
		{RoleAdmin, RoleWorker, string(ActionUpdate)},
		{RoleAdmin, RoleUser, string(ActionUpdate)},
	}
	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer}, nil
}

func (s *service) Authorize(requesterRole, targetRole string, action Action) (Decision, error) {
	s.mu.Lock()
	allowed, err := s.enforcer.Enforce(requesterRole, targetRole, string(action))
	s.mu.Unlock()
	if err != nil {
		return Decision{}, err
	}

	if allowed {
		return Decision{Allowed: true}, nil
	}

	return Decision{Allowed: false, Reason: denyReason(requesterRole, action)}, nil
}

func denyReason(requesterRole string, action Action) string {
	if requesterRole != RoleAdmin && requesterRole != RoleSuperAdmin {
		if action == ActionCreate {
			return "Only administrators can create new users"
		}
		return "Only administrators can update users"
	}
	// An admin hitting a deny can only mean the target outranks them.
	return "You cannot update administrator accounts"
}
