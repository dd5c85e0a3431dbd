package api

import (
	"context"

	"feedbackdesk/internal/client/models"
)

// LoginResult carries the tokens and role issued by the login endpoint.
// The refresh token may be absent; refresh then fails on first use and the
// session expires, which is the same behaviour as a rejected token.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Role         models.Role
}

// RegisterRequest is the payload of the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Admin Staff"`
}

// AdminFeedQuery narrows the admin feedback table: free-text search,
// category filter, and 1-based page number.
type AdminFeedQuery struct {
	Search   string
	Category string
	Page     int
}

// Client is the remote feedback API. Implementations attach credentials to
// the calls that need them; callers get response bodies decoded into models
// and errors mapped onto the sentinels in internal/common.
type Client interface {
	Login(ctx context.Context, username, password string) (LoginResult, error)
	Register(ctx context.Context, req RegisterRequest) error

	SubmitFeedback(ctx context.Context, sub models.FeedbackSubmission) error
	AdminDashboard(ctx context.Context, q AdminFeedQuery) (models.AdminDashboard, error)
	StaffDashboard(ctx context.Context, page int) (models.StaffDashboard, error)
	Analysis(ctx context.Context, filter string) (models.Analysis, error)
	ActiveUsers(ctx context.Context) ([]models.UserRecord, error)
	DeleteUser(ctx context.Context, username string) error
	DeleteFeedback(ctx context.Context, id int64) error
	EditFeedback(ctx context.Context, id int64, feedbackText string) error
}
