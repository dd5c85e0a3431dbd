package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"feedbackdesk/internal/client/models"
)

func TestRenderFeedbackTable_AdminColumns(t *testing.T) {
	var out bytes.Buffer
	renderFeedbackTable(&out, []models.FeedbackRecord{
		{ID: 1, UserName: "bob", Category: "Books", ProductName: "Novel", FeedbackText: "Nice\nread", Sentiment: "Positive"},
	})

	s := out.String()
	require.Contains(t, s, "USER")
	require.Contains(t, s, "bob")
	require.Contains(t, s, "Nice read", "multi-line text is collapsed")
}

func TestRenderFeedbackTable_StaffColumns(t *testing.T) {
	var out bytes.Buffer
	renderFeedbackTable(&out, []models.FeedbackRecord{
		{ID: 2, Category: "Toys", ProductName: "Kite", FeedbackText: "Broke", Sentiment: "Negative"},
	})

	s := out.String()
	require.NotContains(t, s, "USER")
	require.Contains(t, s, "Kite")
}

func TestRenderFeedbackTable_Empty(t *testing.T) {
	var out bytes.Buffer
	renderFeedbackTable(&out, nil)
	require.Contains(t, out.String(), "No feedbacks found.")
}

func TestRenderUserTable(t *testing.T) {
	var out bytes.Buffer
	renderUserTable(&out, []models.UserRecord{
		{Username: "carol", Email: "carol@example.com", DateJoined: "2024-05-01", Role: models.RoleStaff},
	})

	s := out.String()
	require.Contains(t, s, "carol@example.com")
	require.Contains(t, s, "Staff")

	out.Reset()
	renderUserTable(&out, nil)
	require.Contains(t, out.String(), "No registered users found.")
}
