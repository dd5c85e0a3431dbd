package cli

import (
	"context"
	"fmt"
)

// EditFeedback updates the text of one of the caller's own feedback rows.
// Only the text can change; category, product and sentiment stay
// server-owned.
func (a *App) EditFeedback(ctx context.Context) error {
	id, err := GetInt(a.reader, "Feedback ID to edit", 0, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if id < 1 {
		fmt.Fprintln(a.out, "A feedback ID is required")
		return nil
	}

	text, err := GetSimpleText(a.reader, "New feedback text", a.out)
	if err != nil {
		return err
	}

	if err := a.feedback.EditFeedback(ctx, int64(id), text); err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Feedback updated")
	return nil
}

// DeleteFeedback removes one of the caller's own feedback rows.
func (a *App) DeleteFeedback(ctx context.Context) error {
	id, err := GetInt(a.reader, "Feedback ID to delete", 0, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}
	if id < 1 {
		fmt.Fprintln(a.out, "A feedback ID is required")
		return nil
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete feedback %d? (y/N)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "y" && confirm != "Y" {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.feedback.DeleteFeedback(ctx, int64(id)); err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Feedback deleted")
	return nil
}
