package cli

import (
	"context"
	"fmt"
)

// Users lists the registered staff users for the admin.
func (a *App) Users(ctx context.Context) error {
	users, err := a.feedback.ActiveUsers(ctx)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	renderUserTable(a.out, users)
	return nil
}

// DeleteUser removes a staff user by username, after confirmation.
func (a *App) DeleteUser(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Username to delete", a.out)
	if err != nil {
		return err
	}
	if username == "" {
		fmt.Fprintln(a.out, "A username is required")
		return nil
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete user %q? (y/N)", username), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.feedback.DeleteUser(ctx, username); err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "User deleted")
	return nil
}
