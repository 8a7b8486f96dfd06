package domain

import "time"

// AppRole is the fixed enumeration of role names known to the system.
type AppRole string

const (
	RoleUser   AppRole = "ROLE_USER"
	RoleSeller AppRole = "ROLE_SELLER"
	RoleAdmin  AppRole = "ROLE_ADMIN"
)

// ParseAppRole maps the short role aliases accepted at signup to AppRoles.
func ParseAppRole(s string) (AppRole, bool) {
	switch s {
	case "user":
		return RoleUser, true
	case "seller":
		return RoleSeller, true
	case "admin":
		return RoleAdmin, true
	}
	return "", false
}

// Role is a named capability grant. Role names are unique; a Role is
// referenced, never owned, by the users carrying it.
type Role struct {
	ID   string  `json:"id"`
	Name AppRole `json:"name"`
}

// User models an account holder. Roles is a plain set-valued field replaced
// wholesale by ReplaceRoles; there are no partial role updates.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Roles        []AppRole `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(r AppRole) bool {
	for _, have := range u.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// Principal is the request-scoped authenticated identity installed by the
// authentication middleware and consulted by the authorization policy.
// Exactly one Principal, or none, exists per request; it is never persisted
// and never shared across requests.
type Principal struct {
	Username string
	Roles    []AppRole
}

// HasRole reports whether the principal carries the given role.
func (p Principal) HasRole(r AppRole) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}
