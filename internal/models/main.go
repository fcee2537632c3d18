// Package models defines the data structures shared between the tutor
// client and the backend wire contract.
package models

// Role is the authorization role of an account.
type Role string

const (
	// RoleUser is a regular tutoring user.
	RoleUser Role = "user"
	// RoleAdmin may manage knowledge documents, users and system status.
	RoleAdmin Role = "admin"
)

// View identifies one of the client screens.
type View string

const (
	// ViewChat is the tutoring conversation screen, the default view.
	ViewChat View = "chat"
	// ViewAdmin is the administration dashboard, admin-only.
	ViewAdmin View = "admin"
	// ViewSettings is the account settings screen.
	ViewSettings View = "settings"
)

// LoginType selects which kind of account the auth screen signs in.
type LoginType string

const (
	LoginTypeUser  LoginType = "user"
	LoginTypeAdmin LoginType = "admin"
)

// AuthMode selects between signing in and creating an account.
type AuthMode string

const (
	AuthModeLogin    AuthMode = "login"
	AuthModeRegister AuthMode = "register"
)

// ChatMessage is one entry of the tutoring conversation. Role is either
// "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	// ChatRoleUser marks a message typed by the user.
	ChatRoleUser = "user"
	// ChatRoleAssistant marks an answer produced by the tutor.
	ChatRoleAssistant = "assistant"
)

// Session is the client-resident identity derived from a credential via
// GET /auth/me. It is never persisted; it is re-derived from the stored
// token on every start.
type Session struct {
	// ID is the account identifier assigned by the backend.
	ID int64 `json:"id"`
	// Email is the login email address.
	Email string `json:"email"`
	// FullName is the optional display name.
	FullName string `json:"full_name,omitempty"`
	// Role decides which views and operations are reachable.
	Role Role `json:"role"`
}

// IsAdmin reports whether the session carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// AdminUser is one row of the admin user listing.
type AdminUser struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at,omitempty"`
}

// KnowledgeDoc describes one uploaded knowledge document as listed by the
// admin knowledge endpoints.
type KnowledgeDoc struct {
	ID           int64  `json:"id"`
	OriginalName string `json:"original_name"`
	StoredName   string `json:"stored_name,omitempty"`
	Size         int64  `json:"size"`
	ContentType  string `json:"content_type,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// SystemStatus is the admin system health report.
type SystemStatus struct {
	OK       bool              `json:"ok"`
	Services map[string]string `json:"services"`
	Stats    SystemStats       `json:"stats"`
}

// SystemStats holds the counters shown on the system tab.
type SystemStats struct {
	Users         int `json:"users"`
	KnowledgeDocs int `json:"knowledge_docs"`
}
