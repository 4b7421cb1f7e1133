package employee

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-dispatch/internal/audit"
	"go-dispatch/internal/authz"
	employeeerrors "go-dispatch/internal/employee/errors"
	"go-dispatch/internal/shared/apperror"
	"go-dispatch/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Requester is a resolved identity for an authorization decision.
type Requester struct {
	ID       string
	Username string
	Role     Role
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, tenantID string) ([]EmployeeResponse, error)
	Create(ctx context.Context, requesterID, tenantID string, req CreateEmployeeRequest) (MutationResponse, error)
	Update(ctx context.Context, requesterID, tenantID, employeeID string, req UpdateEmployeeRequest) (MutationResponse, error)
	CredentialLogs(ctx context.Context, requesterID, tenantID string) ([]CredentialLogEntry, error)
	ResolveRequester(ctx context.Context, userID, tenantID string) (Requester, error)
}

type service struct {
	repo     Repository
	gate     authz.Service
	recorder audit.Recorder
}

func NewService(repo Repository, gate authz.Service, recorder audit.Recorder) Service {
	return &service{repo: repo, gate: gate, recorder: recorder}
}

func (s *service) List(ctx context.Context, tenantID string) ([]EmployeeResponse, error) {
	employees := s.repo.List(ctx, tenantID)

	resp := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		resp[i] = toResponse(e)
	}
	return resp, nil
}

// ResolveRequester maps a bearer identity onto an employee record. The
// distinguished super-admin id short-circuits the lookup entirely; everyone
// else must exist in the global list or, when a tenant context is present,
// the tenant list.
func (s *service) ResolveRequester(ctx context.Context, userID, tenantID string) (Requester, error) {
	if userID == "" {
		return Requester{}, apperror.ErrUnauthorized
	}

	if userID == SuperAdminID {
		return Requester{ID: userID, Username: "Super Admin", Role: RoleSuperAdmin}, nil
	}

	for _, e := range s.repo.List(ctx, "") {
		if e.ID == userID {
			return Requester{ID: e.ID, Username: e.Username, Role: e.Role}, nil
		}
	}
	if tenantID != "" {
		for _, e := range s.repo.List(ctx, tenantID) {
			if e.ID == userID {
				return Requester{ID: e.ID, Username: e.Username, Role: e.Role}, nil
			}
		}
	}

	return Requester{}, employeeerrors.ErrRequesterUnknown
}

func (s *service) Create(ctx context.Context, requesterID, tenantID string, req CreateEmployeeRequest) (MutationResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	requester, err := s.ResolveRequester(ctx, requesterID, tenantID)
	if err != nil {
		return MutationResponse{}, err
	}

	role := NormalizeRole(req.Role)

	decision, err := s.gate.Authorize(string(requester.Role), string(role), authz.ActionCreate)
	if err != nil {
		return MutationResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "authorization check failed", http.StatusInternalServerError)
	}
	if !decision.Allowed {
		return MutationResponse{}, apperror.New(apperror.CodeForbidden, decision.Reason, http.StatusForbidden)
	}

	employees := s.repo.List(ctx, tenantID)
	if usernameTaken(employees, req.Username, "") {
		return MutationResponse{}, employeeerrors.ErrUsernameTaken
	}

	perms := DefaultPermissions(role)
	if req.Permissions != nil {
		perms = *req.Permissions
	}

	newEmployee := Employee{
		ID:           uuid.NewString(),
		Username:     req.Username,
		PasswordHash: HashPassword(req.Password),
		Role:         role,
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    requester.ID,
		Permissions:  perms,
	}

	employees = append(employees, newEmployee)
	s.repo.Save(ctx, tenantID, employees)

	// Credential ledger gets the issued plaintext, newest entry first.
	entries := s.repo.Credentials(ctx, tenantID)
	entries = append([]CredentialLogEntry{{
		ID:          uuid.NewString(),
		Username:    req.Username,
		Password:    req.Password,
		Role:        role,
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   requester.Username,
		CreatedByID: requester.ID,
	}}, entries...)
	s.repo.SaveCredentials(ctx, tenantID, entries)

	s.recorder.Log(ctx, audit.NewEntry{
		Username: requester.Username,
		Action:   audit.ActionUserCreated,
		UserID:   requester.ID,
		Details:  fmt.Sprintf("Created %s account for %s", role, req.Username),
	})

	l.Info("employee created",
		zap.String("username", req.Username),
		zap.String("role", string(role)),
		zap.String("tenant_id", tenantID),
	)

	return MutationResponse{Success: true, Employee: toResponse(newEmployee)}, nil
}

func (s *service) Update(ctx context.Context, requesterID, tenantID, employeeID string, req UpdateEmployeeRequest) (MutationResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	requester, err := s.ResolveRequester(ctx, requesterID, tenantID)
	if err != nil {
		return MutationResponse{}, err
	}

	employees := s.repo.List(ctx, tenantID)

	idx := -1
	for i, e := range employees {
		if e.ID == employeeID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return MutationResponse{}, employeeerrors.ErrEmployeeNotFound
	}
	target := employees[idx]

	decision, err := s.gate.Authorize(string(requester.Role), string(target.Role), authz.ActionUpdate)
	if err != nil {
		return MutationResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "authorization check failed", http.StatusInternalServerError)
	}
	if !decision.Allowed {
		return MutationResponse{}, apperror.New(apperror.CodeForbidden, decision.Reason, http.StatusForbidden)
	}

	if req.Username != nil && !strings.EqualFold(*req.Username, target.Username) {
		if usernameTaken(employees, *req.Username, target.ID) {
			return MutationResponse{}, employeeerrors.ErrUsernameTaken
		}
		target.Username = *req.Username
	}
	if req.FullName != nil {
		target.FullName = *req.FullName
	}
	if req.Email != nil {
		target.Email = *req.Email
	}
	if req.Phone != nil {
		target.Phone = *req.Phone
	}
	if req.IsActive != nil {
		target.IsActive = *req.IsActive
	}
	if req.Permissions != nil {
		target.Permissions = *req.Permissions
	}

	passwordChanged := false
	if req.Password != nil && *req.Password != "" {
		target.PasswordHash = HashPassword(*req.Password)
		passwordChanged = true
	}

	employees[idx] = target
	s.repo.Save(ctx, tenantID, employees)

	s.recorder.Log(ctx, audit.NewEntry{
		Username: requester.Username,
		Action:   audit.ActionUserUpdated,
		UserID:   requester.ID,
		Details:  fmt.Sprintf("Updated %s account for %s", target.Role, target.Username),
	})
	if passwordChanged {
		s.recorder.Log(ctx, audit.NewEntry{
			Username: requester.Username,
			Action:   audit.ActionPasswordChanged,
			UserID:   requester.ID,
			Details:  fmt.Sprintf("Changed password for %s", target.Username),
		})
	}

	l.Info("employee updated",
		zap.String("employee_id", employeeID),
		zap.String("tenant_id", tenantID),
	)

	return MutationResponse{Success: true, Employee: toResponse(target)}, nil
}

// CredentialLogs enforces the visibility rule: the distinguished super admin
// sees the whole ledger, any other admin only the entries they created.
func (s *service) CredentialLogs(ctx context.Context, requesterID, tenantID string) ([]CredentialLogEntry, error) {
	requester, err := s.ResolveRequester(ctx, requesterID, tenantID)
	if err != nil {
		return nil, err
	}

	if requester.Role != RoleAdmin && requester.Role != RoleSuperAdmin {
		return nil, employeeerrors.ErrCredentialLogsForbidden
	}

	entries := s.repo.Credentials(ctx, tenantID)
	if requester.ID == SuperAdminID {
		return entries, nil
	}

	visible := make([]CredentialLogEntry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedByID == requester.ID {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

// usernameTaken checks case-insensitively within one scope, skipping the
// record identified by excludeID so updates don't collide with themselves.
func usernameTaken(employees []Employee, username, excludeID string) bool {
	for _, e := range employees {
		if e.ID == excludeID {
			continue
		}
		if strings.EqualFold(e.Username, username) {
			return true
		}
	}
	return false
}
