// Package models defines the records persisted by drawerfinder stores.
package models

// Role is the authorization level of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a login account. UserName is the store key and is not part of the
// JSON record body.
type User struct {
	UserName     string `json:"-"`
	DisplayName  string `json:"name"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}
