// Package session models the identity of one connected client.
package session

import (
	"github.com/google/uuid"

	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// Session is created by a successful login and owned by the client that
// performed it. A nil *Session means "not logged in".
type Session struct {
	ID          string
	UserName    string
	DisplayName string
	Role        models.Role
}

// New opens a session for u with a fresh random id.
func New(u models.User) *Session {
	return &Session{
		ID:          uuid.NewString(),
		UserName:    u.UserName,
		DisplayName: u.DisplayName,
		Role:        u.Role,
	}
}

// LoggedIn reports whether s belongs to an authenticated user.
func (s *Session) LoggedIn() bool {
	return s != nil && s.UserName != ""
}

// IsAdmin reports whether s may manage user accounts.
func (s *Session) IsAdmin() bool {
	return s.LoggedIn() && s.Role == models.RoleAdmin
}
