package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/models"
)

// Analysis shows aggregate sentiment figures for a chosen time window.
func (a *App) Analysis(ctx context.Context) error {
	filter, err := GetChoice(a.reader, "Time filter (empty for total)", models.AnalysisFilters, a.out)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	stats, err := a.feedback.Analysis(ctx, filter)
	if err != nil {
		a.reportError(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Positive: %d\nNeutral: %d\nNegative: %d\nTotal feedbacks: %d\n",
		stats.Positive, stats.Neutral, stats.Negative, stats.TotalCount)
	fmt.Fprintf(a.out, "Today: %d  This week: %d  This month: %d\n",
		stats.FeedbacksLastDay, stats.FeedbacksLastWeek, stats.FeedbacksLastMon)
	fmt.Fprintf(a.out, "Active users: %d\n", stats.ActiveUsersCount)
	return nil
}
