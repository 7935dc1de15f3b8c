package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// Login prompts for credentials and, on success, replaces the App's session.
// A failed attempt keeps the previous session.
func (a *App) Login(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.reader, a.inFd, "Password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	s, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		return a.fail(err)
	}

	a.session = s
	fmt.Fprintf(a.out, "Welcome back, %s!\n", displayName(s.DisplayName, s.UserName))
	return nil
}

// Logout drops the session.
func (a *App) Logout(ctx context.Context) error {
	a.session = nil
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.fail(common.ErrUnauthorized)
	}
	fmt.Fprintf(a.out, "%s (%s), role %s\n", a.session.UserName, displayName(a.session.DisplayName, a.session.UserName), a.session.Role)
	return nil
}

// Users prints every account. Admin only.
func (a *App) Users(ctx context.Context) error {
	list, err := a.authService.ListUsers(ctx, a.session)
	if err != nil {
		return a.fail(err)
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tNAME\tROLE")
	for _, u := range list {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.UserName, u.DisplayName, u.Role)
	}
	return tw.Flush()
}

// AddUser prompts for a new account's fields and creates it. Admin only;
// non-admins are refused before any prompt.
func (a *App) AddUser(ctx context.Context) error {
	if !a.isAdmin() {
		return a.fail(common.ErrForbidden)
	}

	userName, err := GetSimpleText(a.reader, "New username", a.out)
	if err != nil {
		return a.fail(err)
	}
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return a.fail(err)
	}
	password, err := GetPassword(a.reader, a.inFd, "Password", a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	role, err := GetSimpleText(a.reader, "Role (user/admin) [user]", a.out)
	if err != nil {
		return a.fail(err)
	}

	err = a.authService.CreateUser(ctx, a.session, userName, name, password, models.Role(role))
	if err != nil {
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "User created successfully.")
	return nil
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
