package auth

import (
	"context"
	"strings"
	"time"

	"go-dispatch/internal/audit"
	"go-dispatch/internal/employee"
	"go-dispatch/internal/shared/apperror"
	"go-dispatch/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	msgInvalidCredentials = "Invalid username or password"
	msgAccountDeactivated = "This account has been deactivated"
	msgLoginSuccessful    = "Login successful"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, tenantID string, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context, userID, tenantID string) (LogoutResponse, error)
}

type service struct {
	repo     employee.Repository
	recorder audit.Recorder
}

func NewService(repo employee.Repository, recorder audit.Recorder) Service {
	return &service{repo: repo, recorder: recorder}
}

// Login matches the username case-insensitively and compares the stored
// placeholder hash. There is no secure verification here; the bearer token
// handed back to clients is simply the matched employee id.
func (s *service) Login(ctx context.Context, tenantID string, req LoginRequest) (LoginResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	if req.TenantID != "" {
		tenantID = req.TenantID
	}

	employees := s.repo.List(ctx, tenantID)

	idx := -1
	for i, e := range employees {
		if strings.EqualFold(e.Username, req.Username) {
			idx = i
			break
		}
	}

	if idx == -1 || employees[idx].PasswordHash != employee.HashPassword(req.Password) {
		s.recorder.Log(ctx, audit.NewEntry{
			Username: req.Username,
			Action:   audit.ActionLoginFailed,
			Details:  "Invalid credentials",
		})
		l.Info("login rejected", zap.String("username", req.Username))
		return LoginResponse{Success: false, Message: msgInvalidCredentials}, nil
	}

	match := employees[idx]
	if !match.IsActive {
		s.recorder.Log(ctx, audit.NewEntry{
			Username: match.Username,
			Action:   audit.ActionLoginFailed,
			UserID:   match.ID,
			Details:  "Account deactivated",
		})
		return LoginResponse{Success: false, Message: msgAccountDeactivated}, nil
	}

	now := time.Now().UTC()
	match.LastLogin = &now
	employees[idx] = match
	s.repo.Save(ctx, tenantID, employees)

	s.recorder.Log(ctx, audit.NewEntry{
		Username: match.Username,
		Action:   audit.ActionLoginSuccess,
		UserID:   match.ID,
	})

	l.Info("login successful",
		zap.String("username", match.Username),
		zap.String("role", string(match.Role)),
	)

	user := toEmployeeResponse(match)
	return LoginResponse{Success: true, Message: msgLoginSuccessful, User: &user}, nil
}

// Logout only records the audit event; there is no server-side session to
// tear down for an opaque bearer token.
func (s *service) Logout(ctx context.Context, userID, tenantID string) (LogoutResponse, error) {
	if userID == "" {
		return LogoutResponse{}, apperror.ErrUnauthorized
	}

	username := userID
	if userID == employee.SuperAdminID {
		username = "Super Admin"
	} else if e, ok := s.findByID(ctx, userID, tenantID); ok {
		username = e.Username
	}

	s.recorder.Log(ctx, audit.NewEntry{
		Username: username,
		Action:   audit.ActionLogout,
		UserID:   userID,
	})

	return LogoutResponse{Success: true}, nil
}

func (s *service) findByID(ctx context.Context, userID, tenantID string) (employee.Employee, bool) {
	for _, e := range s.repo.List(ctx, "") {
		if e.ID == userID {
			return e, true
		}
	}
	if tenantID != "" {
		for _, e := range s.repo.List(ctx, tenantID) {
			if e.ID == userID {
				return e, true
			}
		}
	}
	return employee.Employee{}, false
}

func toEmployeeResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:          e.ID,
		Username:    e.Username,
		Role:        e.Role,
		FullName:    e.FullName,
		Email:       e.Email,
		Phone:       e.Phone,
		IsActive:    e.IsActive,
		CreatedAt:   e.CreatedAt,
		LastLogin:   e.LastLogin,
		CreatedBy:   e.CreatedBy,
		Permissions: e.Permissions,
	}
}
