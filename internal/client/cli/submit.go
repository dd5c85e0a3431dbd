package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/models"
)

// Submit walks the staff user through the feedback form and sends it.
// Validation failures are printed and nothing leaves the machine; the user
// re-runs the command with corrected input.
func (a *App) Submit(ctx context.Context) error {
	category, err := GetChoice(a.reader, "Category", models.Categories, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	productName, err := GetSimpleText(a.reader, "Product name", a.out)
	if err != nil {
		return err
	}

	feedbackText, err := GetSimpleText(a.reader, "Your feedback", a.out)
	if err != nil {
		return err
	}

	sub := models.FeedbackSubmission{
		Category:     category,
		ProductName:  productName,
		FeedbackText: feedbackText,
	}
	if err := a.feedback.Submit(ctx, sub); err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Feedback submitted successfully!")
	return nil
}
