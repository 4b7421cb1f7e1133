package employee

import "time"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleWorker     Role = "worker"
	RoleUser       Role = "user"
)

// SuperAdminID is the distinguished account that bypasses collection lookup
// during requester resolution.
const SuperAdminID = "super_admin_001"

// Permissions is the fixed capability record carried on every employee.
type Permissions struct {
	CanManageUsers      bool `json:"canManageUsers"`
	CanViewReports      bool `json:"canViewReports"`
	CanHandleRequests   bool `json:"canHandleRequests"`
	CanCreateInvoices   bool `json:"canCreateInvoices"`
	CanViewCustomerInfo bool `json:"canViewCustomerInfo"`
	CanDeleteData       bool `json:"canDeleteData"`
}

type Employee struct {
	ID           string      `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"passwordHash"`
	Role         Role        `json:"role"`
	FullName     string      `json:"fullName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	LastLogin    *time.Time  `json:"lastLogin,omitempty"`
	CreatedBy    string      `json:"createdBy"`
	Permissions  Permissions `json:"permissions"`
}

// CredentialLogEntry records the plaintext password issued at account
// creation, for administrator visibility. Append-only, newest first.
type CredentialLogEntry struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Password    string    `json:"password"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
	CreatedByID string    `json:"createdById"`
}

// HashPassword is the placeholder scheme the whole employee store is written
// against. The credential ledger depends on the plaintext staying recoverable,
// so this must not be swapped for a real hash in isolation.
func HashPassword(password string) string {
	return "hashed_" + password
}

// DefaultPermissions returns the role-appropriate capability set used when a
// caller does not supply one.
func DefaultPermissions(role Role) Permissions {
	switch role {
	case RoleSuperAdmin:
		return Permissions{
			CanManageUsers:      true,
			CanViewReports:      true,
			CanHandleRequests:   true,
			CanCreateInvoices:   true,
			CanViewCustomerInfo: true,
			CanDeleteData:       true,
		}
	case RoleAdmin:
		return Permissions{
			CanManageUsers:      true,
			CanViewReports:      true,
			CanHandleRequests:   true,
			CanCreateInvoices:   true,
			CanViewCustomerInfo: true,
		}
	default:
		return Permissions{
			CanViewReports:      true,
			CanHandleRequests:   true,
			CanCreateInvoices:   true,
			CanViewCustomerInfo: true,
		}
	}
}

// NormalizeRole maps the legacy "employee" role name onto worker.
func NormalizeRole(role Role) Role {
	if role == "employee" {
		return RoleWorker
	}
	return role
}
