package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/housesell/internal/common"
)

// getSimpleText, getPassword, getLines and confirm are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getLines      = GetLines
	confirm       = Confirm
)

// Signup prompts for an email, a password (showing its strength) and a
// confirmation, then registers and logs in the new user.
func (a *App) Signup(ctx context.Context) error {
	if u := a.currentUser(); u != nil {
		return a.fail(ctx, fmt.Errorf("already logged in as %s; logout first", u.Email))
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, fmt.Sprintf("Enter password (min %d characters)", a.sessions.MinPasswordLength()), a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if s := a.sessions.PasswordStrength(string(password)); s.Label != "" {
		fmt.Fprintf(a.out, "Password strength: %s\n", strengthStyle(s).Render(s.Label))
	}

	again, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)

	if !bytes.Equal(password, again) {
		return a.fail(ctx, fmt.Errorf("%w: passwords do not match", common.ErrValidation))
	}

	u, err := a.sessions.Signup(ctx, email, string(password))
	if err != nil {
		return a.fail(ctx, err)
	}

	a.success("Account created. Logged in as " + u.Email)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		return a.fail(ctx, err)
	}

	a.success("Logged in as " + u.Email)
	return nil
}

// Logout ends the current session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.fail(ctx, common.ErrNotAuthenticated)
	}
	if err := a.sessions.Logout(ctx); err != nil {
		return a.fail(ctx, err)
	}
	a.success("Logged out")
	return nil
}

// WhoAmI prints the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.currentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (member since %s)\n", u.Email, u.CreatedAt.Format("Jan 2, 2006"))
	return nil
}

// fail reports err to the user and returns it.
func (a *App) fail(ctx context.Context, err error) error {
	msg := err.Error()
	if errors.Is(err, common.ErrStorage) {
		a.log.Error(ctx, "storage failure", "error", err)
		msg = "could not access local storage, please try again"
	}
	fmt.Fprintln(a.out, errorStyle.Render("Error: "+msg))
	return err
}

func (a *App) success(msg string) {
	fmt.Fprintln(a.out, successStyle.Render(msg))
}
