package audit

import "time"

// Action is the closed set of recordable audit events.
type Action string

const (
	ActionLoginSuccess    Action = "login_success"
	ActionLoginFailed     Action = "login_failed"
	ActionLogout          Action = "logout"
	ActionUserCreated     Action = "user_created"
	ActionUserUpdated     Action = "user_updated"
	ActionPasswordChanged Action = "password_changed"
)

// Entry is one immutable line of the audit ledger.
type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	Action    Action    `json:"action"`
	Details   string    `json:"details,omitempty"`
	UserID    string    `json:"userId,omitempty"`
}

// NewEntry is the caller-supplied part of an Entry; id and timestamp are
// assigned by the recorder.
type NewEntry struct {
	Username string
	Action   Action
	Details  string
	UserID   string
}
