package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/common"
)

// reportError prints a user-facing line for a failed command. The session-
// expired case matters most: the store has already been cleared by the
// request wrapper, so the user is told to log in again.
func (a *App) reportError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, common.ErrSessionExpired):
		fmt.Fprintln(a.out, "Session expired, please 'login' again")
	case errors.Is(err, common.ErrNotLoggedIn):
		fmt.Fprintln(a.out, "Not logged in")
	case errors.Is(err, common.ErrUnavailable):
		fmt.Fprintln(a.out, "Server unavailable, try again later")
	default:
		fmt.Fprintf(a.out, "Error: %s\n", err)
	}
	a.log.Debug(ctx, "command failed", "error", err)
}

// renderFeedbackTable prints feedback records as a table. The user column
// only appears when at least one record carries it (admin views).
func renderFeedbackTable(w io.Writer, records []models.FeedbackRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No feedbacks found.")
		return
	}

	withUser := false
	for _, r := range records {
		if r.UserName != "" {
			withUser = true
			break
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if withUser {
		fmt.Fprintln(tw, "ID\tUSER\tCATEGORY\tPRODUCT\tFEEDBACK\tSENTIMENT")
	} else {
		fmt.Fprintln(tw, "ID\tCATEGORY\tPRODUCT\tFEEDBACK\tSENTIMENT")
	}
	for _, r := range records {
		if withUser {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, r.UserName, r.Category, r.ProductName, oneLine(r.FeedbackText), r.Sentiment)
		} else {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
				r.ID, r.Category, r.ProductName, oneLine(r.FeedbackText), r.Sentiment)
		}
	}
	_ = tw.Flush()
}

func renderUserTable(w io.Writer, users []models.UserRecord) {
	if len(users) == 0 {
		fmt.Fprintln(w, "No registered users found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "USERNAME\tEMAIL\tDATE JOINED\tROLE")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Username, u.Email, u.DateJoined, u.Role)
	}
	_ = tw.Flush()
}

func renderSentimentCounts(w io.Writer, c models.SentimentCounts) {
	fmt.Fprintf(w, "Positive: %d\nNeutral: %d\nNegative: %d\nTotal: %d\n",
		c.Positive, c.Neutral, c.Negative, c.Total)
}

// oneLine collapses multi-line feedback text so it fits a table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
