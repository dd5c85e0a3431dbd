package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/api"
)

// Register collects account details and creates the user. Registration does
// not log the user in; they still go through the login flow afterwards.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	role, err := GetChoice(a.reader, "Select role", []string{"Staff", "Admin"}, a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}
	if role == "" {
		role = "Staff"
	}

	req := api.RegisterRequest{Username: username, Email: email, Password: password, Role: role}
	if err := a.auth.Register(ctx, req); err != nil {
		// Server validation messages come through verbatim; the user can
		// re-run the command with corrected input.
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintln(a.out, "Registration successful, you can now 'login'")
	return nil
}
