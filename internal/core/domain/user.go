package domain

// Role is the active role of an authenticated principal.
type Role string

const (
	RoleAdministrator Role = "ADMINISTRATOR"
	RoleInventor      Role = "INVENTOR"
	RolePatron        Role = "PATRON"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleInventor, RolePatron:
		return true
	}
	return false
}

// User represents an account of the marketplace.
type User struct {
	UserID       string `json:"userID"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	AuditFields
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	UserID string
	Role   Role
}
