package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
)

// Dashboard shows the landing screen for the current role: account info
// plus aggregate figures for admins, account info plus the caller's own
// sentiment summary for staff.
func (a *App) Dashboard(ctx context.Context) error {
	switch a.currentRole() {
	case models.RoleAdmin:
		return a.adminDashboard(ctx)
	case models.RoleStaff:
		return a.staffDashboard(ctx)
	default:
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
}

func (a *App) adminDashboard(ctx context.Context) error {
	dash, err := a.feedback.AdminDashboard(ctx, api.AdminFeedQuery{Page: 1})
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", orDefault(dash.AdminInfo.Name, "Admin"))
	fmt.Fprintf(a.out, "Email: %s\n\n", orDefault(dash.AdminInfo.Email, "not available"))

	stats, err := a.feedback.Analysis(ctx, "total")
	if err != nil {
		// The dashboard stays useful without the stats block.
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Feedback statistics:")
	fmt.Fprintf(a.out, "  Positive: %d  Neutral: %d  Negative: %d  Total: %d\n",
		stats.Positive, stats.Neutral, stats.Negative, stats.TotalCount)
	fmt.Fprintf(a.out, "  Today: %d  This week: %d  This month: %d\n",
		stats.FeedbacksLastDay, stats.FeedbacksLastWeek, stats.FeedbacksLastMon)
	fmt.Fprintf(a.out, "  Active users: %d\n", stats.ActiveUsersCount)
	return nil
}

func (a *App) staffDashboard(ctx context.Context) error {
	dash, err := a.feedback.StaffDashboard(ctx, 1)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", orDefault(dash.StaffInfo.Name, "Staff Member"))
	fmt.Fprintf(a.out, "Email: %s\n\n", orDefault(dash.StaffInfo.Email, "not available"))

	fmt.Fprintln(a.out, "Your feedback summary:")
	renderSentimentCounts(a.out, dash.SentimentCounts)
	return nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
