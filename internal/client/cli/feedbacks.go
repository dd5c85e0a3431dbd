package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
)

// Feedbacks shows the feedback table for the current role: every user's
// feedback with search and category filters for admins, the caller's own
// feedback for staff. Both are paginated server-side.
func (a *App) Feedbacks(ctx context.Context) error {
	switch a.currentRole() {
	case models.RoleAdmin:
		return a.adminFeedbacks(ctx)
	case models.RoleStaff:
		return a.staffFeedbacks(ctx)
	default:
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
}

func (a *App) adminFeedbacks(ctx context.Context) error {
	search, err := GetSimpleText(a.reader, "Search text (empty for all)", a.out)
	if err != nil {
		return err
	}

	category, err := GetChoice(a.reader, "Filter by category (empty for all)", models.Categories, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	page, err := GetInt(a.reader, "Page (empty for first)", 1, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	dash, err := a.feedback.AdminDashboard(ctx, api.AdminFeedQuery{
		Search:   search,
		Category: category,
		Page:     page,
	})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	renderFeedbackTable(a.out, dash.Feedbacks)
	fmt.Fprintf(a.out, "Page %d of %d\n", orPage(dash.CurrentPage, page), dash.TotalPages)

	// Remember the page so 'export' can write out what was just shown.
	a.lastAdminFeed = dash.Feedbacks
	return nil
}

func (a *App) staffFeedbacks(ctx context.Context) error {
	page, err := GetInt(a.reader, "Page (empty for first)", 1, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	dash, err := a.feedback.StaffDashboard(ctx, page)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	renderFeedbackTable(a.out, dash.Feedbacks)
	fmt.Fprintf(a.out, "Page %d of %d\n", orPage(dash.CurrentPage, page), dash.TotalPages)
	return nil
}

func orPage(current, requested int) int {
	if current > 0 {
		return current
	}
	return requested
}
