// Package services contains the application services the CLI talks to.
// This file defines the authentication service: login, account creation
// and listing, and bootstrap of the credential store.
package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/cryptox"
	"github.com/dmitrijs2005/drawerfinder/internal/logging"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/users"
	"github.com/dmitrijs2005/drawerfinder/internal/session"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Bootstrap: make sure the credential store exists (seeding the admin).
//   - Login: verify credentials and open a session.
//   - CreateUser: admin-only; username and password are required.
//   - ListUsers: admin-only; password hashes are cleared.
type AuthService interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) (*session.Session, error)
	CreateUser(ctx context.Context, s *session.Session, username, displayName string, password []byte, role models.Role) error
	ListUsers(ctx context.Context, s *session.Session) ([]models.User, error)
}

type authService struct {
	repo   users.Repository
	hasher cryptox.Hasher
	log    logging.Logger
}

// NewAuthService constructs an AuthService over repo. New passwords are
// hashed with hasher.
func NewAuthService(repo users.Repository, hasher cryptox.Hasher, log logging.Logger) AuthService {
	return &authService{repo: repo, hasher: hasher, log: log}
}

func (a *authService) Bootstrap(ctx context.Context) error {
	all, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	a.log.Debug(ctx, "credential store ready", "users", len(all))
	return nil
}

// Login looks the user up and checks the password. It returns
// common.ErrUserNotFound or common.ErrIncorrectPassword on failure.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*session.Session, error) {
	all, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	u, ok := all[username]
	if !ok {
		a.log.Info(ctx, "login failed", "user", username, "reason", "not found")
		return nil, common.ErrUserNotFound
	}

	if !a.hasher.Verify(password, u.PasswordHash) {
		a.log.Info(ctx, "login failed", "user", username, "reason", "bad password")
		return nil, common.ErrIncorrectPassword
	}

	s := session.New(u)
	a.log.Info(ctx, "login", "user", username, "role", string(u.Role), "session", s.ID)
	return s, nil
}

func (a *authService) CreateUser(ctx context.Context, s *session.Session, username, displayName string, password []byte, role models.Role) error {
	if !s.LoggedIn() {
		return common.ErrUnauthorized
	}
	if !s.IsAdmin() {
		return common.ErrForbidden
	}
	if username == "" {
		return fmt.Errorf("%w: username", common.ErrMissingRequiredField)
	}
	if len(password) == 0 {
		return fmt.Errorf("%w: password", common.ErrMissingRequiredField)
	}
	if role == "" {
		role = models.RoleUser
	}
	if !role.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidRole, role)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	u := models.User{
		UserName:     username,
		DisplayName:  displayName,
		PasswordHash: hash,
		Role:         role,
	}
	if err := a.repo.Create(ctx, u); err != nil {
		return err
	}

	a.log.Info(ctx, "user created", "user", username, "role", string(role), "by", s.UserName)
	return nil
}

func (a *authService) ListUsers(ctx context.Context, s *session.Session) ([]models.User, error) {
	if !s.LoggedIn() {
		return nil, common.ErrUnauthorized
	}
	if !s.IsAdmin() {
		return nil, common.ErrForbidden
	}

	all, err := a.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	result := make([]models.User, 0, len(all))
	for _, u := range all {
		u.PasswordHash = ""
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].UserName < result[j].UserName })
	return result, nil
}
