package services

import (
	"context"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
)

// fakeClient implements api.Client for unit tests: inputs are captured,
// outputs are preset.
type fakeClient struct {
	// inputs captured
	lastLoginUser    string
	lastLoginPass    string
	lastRegisterReq  api.RegisterRequest
	lastSubmission   models.FeedbackSubmission
	lastAdminQuery   api.AdminFeedQuery
	lastStaffPage    int
	lastFilter       string
	lastDeletedUser  string
	lastDeletedID    int64
	lastEditedID     int64
	lastEditedText   string
	submitCalls      int
	loginCalls       int
	activeUsersCalls int

	// outputs preset
	loginResult api.LoginResult
	loginErr    error
	registerErr error
	submitErr   error

	adminDashboard models.AdminDashboard
	adminErr       error
	staffDashboard models.StaffDashboard
	staffErr       error
	analysis       models.Analysis
	analysisErr    error
	activeUsers    []models.UserRecord
	activeErr      error
	deleteUserErr  error
	deleteFbErr    error
	editErr        error
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (api.LoginResult, error) {
	f.loginCalls++
	f.lastLoginUser, f.lastLoginPass = username, password
	return f.loginResult, f.loginErr
}

func (f *fakeClient) Register(ctx context.Context, req api.RegisterRequest) error {
	f.lastRegisterReq = req
	return f.registerErr
}

func (f *fakeClient) SubmitFeedback(ctx context.Context, sub models.FeedbackSubmission) error {
	f.submitCalls++
	f.lastSubmission = sub
	return f.submitErr
}

func (f *fakeClient) AdminDashboard(ctx context.Context, q api.AdminFeedQuery) (models.AdminDashboard, error) {
	f.lastAdminQuery = q
	return f.adminDashboard, f.adminErr
}

func (f *fakeClient) StaffDashboard(ctx context.Context, page int) (models.StaffDashboard, error) {
	f.lastStaffPage = page
	return f.staffDashboard, f.staffErr
}

func (f *fakeClient) Analysis(ctx context.Context, filter string) (models.Analysis, error) {
	f.lastFilter = filter
	return f.analysis, f.analysisErr
}

func (f *fakeClient) ActiveUsers(ctx context.Context) ([]models.UserRecord, error) {
	f.activeUsersCalls++
	return f.activeUsers, f.activeErr
}

func (f *fakeClient) DeleteUser(ctx context.Context, username string) error {
	f.lastDeletedUser = username
	return f.deleteUserErr
}

func (f *fakeClient) DeleteFeedback(ctx context.Context, id int64) error {
	f.lastDeletedID = id
	return f.deleteFbErr
}

func (f *fakeClient) EditFeedback(ctx context.Context, id int64, feedbackText string) error {
	f.lastEditedID, f.lastEditedText = id, feedbackText
	return f.editErr
}
