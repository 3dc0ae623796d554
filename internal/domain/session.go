package domain

import "strings"

// Role is the access level attached to a backend session. The backend emits
// uppercase role names; ParseRole accepts any casing.
type Role string

const (
	RoleAnonymous Role = ""
	RoleCustomer  Role = "CUSTOMER"
	RoleSeller    Role = "SELLER"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole maps a backend role string to a known Role. Unknown values fall
// back to customer, the least privileged authenticated role.
func ParseRole(s string) Role {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleSeller):
		return RoleSeller
	case string(RoleCustomer):
		return RoleCustomer
	default:
		return RoleCustomer
	}
}

// SessionUser is the user record embedded in a session lookup result.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  Role   `json:"role"`
}

// Session is the result of a successful session lookup against the auth
// backend. A nil *Session means the caller is anonymous.
type Session struct {
	User SessionUser `json:"user"`
}
