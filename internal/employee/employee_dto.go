package employee

import "time"

type CreateEmployeeRequest struct {
	Username    string       `json:"username" binding:"required,min=3"`
	Password    string       `json:"password" binding:"required,min=6"`
	Role        Role         `json:"role" binding:"required,oneof=admin worker employee user"`
	FullName    string       `json:"fullName" binding:"required"`
	Email       string       `json:"email" binding:"required,email"`
	Phone       string       `json:"phone"`
	Permissions *Permissions `json:"permissions"`
}

// UpdateEmployeeRequest carries partial updates; nil fields are left alone.
type UpdateEmployeeRequest struct {
	Username    *string      `json:"username" binding:"omitempty,min=3"`
	Password    *string      `json:"password" binding:"omitempty,min=8"`
	FullName    *string      `json:"fullName"`
	Email       *string      `json:"email" binding:"omitempty,email"`
	Phone       *string      `json:"phone"`
	IsActive    *bool        `json:"isActive"`
	Permissions *Permissions `json:"permissions"`
}

// EmployeeResponse is an Employee with the password hash stripped.
type EmployeeResponse struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	Role        Role        `json:"role"`
	FullName    string      `json:"fullName"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	IsActive    bool        `json:"isActive"`
	CreatedAt   time.Time   `json:"createdAt"`
	LastLogin   *time.Time  `json:"lastLogin,omitempty"`
	CreatedBy   string      `json:"createdBy"`
	Permissions Permissions `json:"permissions"`
}

type MutationResponse struct {
	Success  bool             `json:"success"`
	Employee EmployeeResponse `json:"employee"`
}

func toResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
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
