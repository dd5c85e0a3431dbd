// Package services contains the application services sitting between the
// CLI and the API client: the session lifecycle and the feedback
// operations.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/client/session"
	"feedbackdesk/internal/client/views"
	"feedbackdesk/internal/common"
	"feedbackdesk/internal/logging"
)

// AuthService owns the session lifecycle.
//
// Contract:
//   - Login: authenticate, persist the session in one write, return the
//     role's landing view. Nothing is persisted on failure or unknown role.
//   - Register: create an account; the session is untouched either way.
//   - Logout: unconditionally clear the credential store; idempotent.
//   - ResolveLandingView: pure function of the current session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (views.View, error)
	Register(ctx context.Context, req api.RegisterRequest) error
	Logout(ctx context.Context) error
	ResolveLandingView() views.View
}

type authService struct {
	client   api.Client
	store    *session.Store
	validate *validator.Validate
	log      logging.Logger
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential store.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{
		client:   client,
		store:    store,
		validate: validator.New(),
		log:      log.With("component", "auth"),
	}
}

// Login exchanges credentials for tokens and a role. On success the whole
// session is persisted in a single Save. Any server-side rejection is
// reported as invalid credentials without detail; an unrecognised role in
// an otherwise successful response is an error of its own and must never
// fall through to a dashboard.
func (a *authService) Login(ctx context.Context, username, password string) (views.View, error) {
	result, err := a.client.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			return views.Login, err
		}
		a.log.Debug(ctx, "login rejected", "error", err)
		return views.Login, common.ErrInvalidCredentials
	}

	if !result.Role.Known() {
		a.log.Warn(ctx, "login returned unrecognised role", "role", string(result.Role))
		return views.Login, fmt.Errorf("%w: %q", common.ErrUnknownRole, string(result.Role))
	}

	sess := models.Session{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		IsLoggedIn:   true,
		Role:         result.Role,
	}
	if err := a.store.Save(ctx, sess); err != nil {
		return views.Login, fmt.Errorf("failed to persist session: %w", err)
	}

	a.log.Info(ctx, "login succeeded", "role", string(result.Role))
	return views.Landing(sess), nil
}

// Register validates the request locally, then creates the account. Server
// validation messages pass through to the caller verbatim.
func (a *authService) Register(ctx context.Context, req api.RegisterRequest) error {
	if err := a.validate.Struct(req); err != nil {
		return fieldErrors(err)
	}
	return a.client.Register(ctx, req)
}

// Logout clears the credential store. Calling it while already logged out
// is a no-op.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.log.Info(ctx, "logged out")
	return nil
}

// ResolveLandingView picks the view a navigation entry point should show
// for the current session. Fails closed: anything unrecognised lands on
// login.
func (a *authService) ResolveLandingView() views.View {
	return views.Landing(a.store.Read())
}
