package auth

import "go-dispatch/internal/employee"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	TenantID string `json:"tenantId"`
}

// LoginResponse is a soft-failure envelope: invalid credentials and inactive
// accounts come back as success=false with a renderable message, never as an
// error.
type LoginResponse struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	User    *employee.EmployeeResponse `json:"user,omitempty"`
}

type LogoutResponse struct {
	Success bool `json:"success"`
}
