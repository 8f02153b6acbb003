package model

// Role is the closed set of account roles known to the backend.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// IsAdmin reports whether the role grants access to the admin console.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Identity is the authenticated account as returned by the auth endpoints.
// It is the single value persisted to client storage between sessions.
type Identity struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Token string `json:"token,omitempty"` // bearer credential, consumed opaquely
}
