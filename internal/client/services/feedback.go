package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/logging"
)

// FeedbackService wraps the feedback endpoints: submission with client-side
// validation, the role dashboards, the admin tables, and CSV export.
type FeedbackService interface {
	Submit(ctx context.Context, sub models.FeedbackSubmission) error
	AdminDashboard(ctx context.Context, q api.AdminFeedQuery) (models.AdminDashboard, error)
	StaffDashboard(ctx context.Context, page int) (models.StaffDashboard, error)
	Analysis(ctx context.Context, filter string) (models.Analysis, error)
	ActiveUsers(ctx context.Context) ([]models.UserRecord, error)
	DeleteUser(ctx context.Context, username string) error
	DeleteFeedback(ctx context.Context, id int64) error
	EditFeedback(ctx context.Context, id int64, feedbackText string) error
	ExportCSV(w io.Writer, records []models.FeedbackRecord) error
}

type feedbackService struct {
	client   api.Client
	validate *validator.Validate
	log      logging.Logger
}

// NewFeedbackService constructs a FeedbackService over the given API client.
func NewFeedbackService(client api.Client, log logging.Logger) FeedbackService {
	return &feedbackService{
		client:   client,
		validate: validator.New(),
		log:      log.With("component", "feedback"),
	}
}

// Submit validates the submission locally (category must be one of the ten
// known values, product name and text non-empty) before any network call,
// so a rejected form costs nothing and stays populated for correction.
func (f *feedbackService) Submit(ctx context.Context, sub models.FeedbackSubmission) error {
	if err := f.validate.Struct(sub); err != nil {
		return fieldErrors(err)
	}
	if err := f.client.SubmitFeedback(ctx, sub); err != nil {
		return err
	}
	f.log.Info(ctx, "feedback submitted", "category", sub.Category)
	return nil
}

func (f *feedbackService) AdminDashboard(ctx context.Context, q api.AdminFeedQuery) (models.AdminDashboard, error) {
	return f.client.AdminDashboard(ctx, q)
}

func (f *feedbackService) StaffDashboard(ctx context.Context, page int) (models.StaffDashboard, error) {
	return f.client.StaffDashboard(ctx, page)
}

// Analysis fetches aggregate sentiment figures. The filter must be one of
// models.AnalysisFilters; an empty filter means "total".
func (f *feedbackService) Analysis(ctx context.Context, filter string) (models.Analysis, error) {
	if filter != "" && !validAnalysisFilter(filter) {
		return models.Analysis{}, fmt.Errorf("filter must be one of: %s", strings.Join(models.AnalysisFilters, ", "))
	}
	return f.client.Analysis(ctx, filter)
}

func (f *feedbackService) ActiveUsers(ctx context.Context) ([]models.UserRecord, error) {
	return f.client.ActiveUsers(ctx)
}

func (f *feedbackService) DeleteUser(ctx context.Context, username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username is required")
	}
	return f.client.DeleteUser(ctx, username)
}

func (f *feedbackService) DeleteFeedback(ctx context.Context, id int64) error {
	return f.client.DeleteFeedback(ctx, id)
}

func (f *feedbackService) EditFeedback(ctx context.Context, id int64, feedbackText string) error {
	if strings.TrimSpace(feedbackText) == "" {
		return fmt.Errorf("feedback text is required")
	}
	return f.client.EditFeedback(ctx, id, feedbackText)
}

// ExportCSV writes records in the same column layout the web client's
// export used: User, Category, Product, Feedback, Sentiment.
func (f *feedbackService) ExportCSV(w io.Writer, records []models.FeedbackRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"User", "Category", "Product", "Feedback", "Sentiment"}); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{rec.UserName, rec.Category, rec.ProductName, rec.FeedbackText, rec.Sentiment}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func validAnalysisFilter(filter string) bool {
	for _, f := range models.AnalysisFilters {
		if f == filter {
			return true
		}
	}
	return false
}
