package cli

import (
	"context"
	"errors"
	"fmt"

	"feedbackdesk/internal/common"
)

// Login prompts for credentials and, on success, reports the landing view
// for the issued role. A rejected login leaves any previous session alone.
func (a *App) Login(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	view, err := a.auth.Login(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Fprintln(a.out, "Invalid credentials")
		case errors.Is(err, common.ErrUnknownRole):
			fmt.Fprintln(a.out, "Login succeeded but the account's role is not supported")
		case errors.Is(err, common.ErrUnavailable):
			fmt.Fprintln(a.out, "Server unavailable, try again later")
		default:
			fmt.Fprintf(a.out, "Login failed: %s\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Login successful, opening %s\n", view)
	return nil
}

// Logout clears the session. Safe to call when already logged out.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %s\n", err)
		return err
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
