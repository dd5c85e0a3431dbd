package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/client/session"
	"feedbackdesk/internal/client/views"
	"feedbackdesk/internal/common"
	"feedbackdesk/internal/logging"

	_ "modernc.org/sqlite"
)

var storeSeq int

func setupStore(t *testing.T) *session.Store {
	t.Helper()
	ctx := context.Background()
	storeSeq++
	db, err := session.OpenDatabase(ctx, fmt.Sprintf("file:authsvc%d?mode=memory&cache=shared", storeSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := session.NewStore(ctx, db)
	require.NoError(t, err)
	return store
}

func testLogger() logging.Logger {
	return logging.NewZerologLogger(logging.Options{Level: "error", Output: io.Discard})
}

func TestAuthService_Login_Admin(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	client := &fakeClient{
		loginResult: api.LoginResult{AccessToken: "tok1", RefreshToken: "ref1", Role: models.RoleAdmin},
	}
	svc := NewAuthService(client, store, testLogger())

	view, err := svc.Login(ctx, "alice", "correct")
	require.NoError(t, err)
	require.Equal(t, views.AdminDashboard, view)
	require.Equal(t, "alice", client.lastLoginUser)
	require.Equal(t, "correct", client.lastLoginPass)

	require.Equal(t, models.Session{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		IsLoggedIn:   true,
		Role:         models.RoleAdmin,
	}, store.Read())
	require.Equal(t, views.AdminDashboard, svc.ResolveLandingView())
}

func TestAuthService_Login_Staff(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	client := &fakeClient{
		loginResult: api.LoginResult{AccessToken: "tok9", RefreshToken: "ref9", Role: models.RoleStaff},
	}
	svc := NewAuthService(client, store, testLogger())

	view, err := svc.Login(ctx, "bob", "pw")
	require.NoError(t, err)
	require.Equal(t, views.StaffDashboard, view)
	require.Equal(t, models.RoleStaff, store.Read().Role)
	require.Equal(t, views.StaffDashboard, svc.ResolveLandingView())
}

func TestAuthService_Login_RejectedLeavesSessionUntouched(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	client := &fakeClient{loginErr: &api.APIError{Status: 401}}
	svc := NewAuthService(client, store, testLogger())

	_, err := svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	require.Equal(t, models.Session{}, store.Read())
}

func TestAuthService_Login_UnavailablePropagates(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	client := &fakeClient{loginErr: fmt.Errorf("%w: connection refused", common.ErrUnavailable)}
	svc := NewAuthService(client, store, testLogger())

	_, err := svc.Login(ctx, "alice", "correct")
	require.ErrorIs(t, err, common.ErrUnavailable)
	require.NotErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownRoleNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	client := &fakeClient{
		loginResult: api.LoginResult{AccessToken: "tok1", RefreshToken: "ref1", Role: "Superuser"},
	}
	svc := NewAuthService(client, store, testLogger())

	view, err := svc.Login(ctx, "eve", "pw")
	require.ErrorIs(t, err, common.ErrUnknownRole)
	require.Equal(t, views.Login, view, "must not default to a dashboard")
	require.Equal(t, models.Session{}, store.Read())
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)
	require.NoError(t, store.Save(ctx, models.Session{
		AccessToken: "tok", RefreshToken: "ref", IsLoggedIn: true, Role: models.RoleAdmin,
	}))
	svc := NewAuthService(&fakeClient{}, store, testLogger())

	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, models.Session{}, store.Read())
	require.Equal(t, views.Login, svc.ResolveLandingView())

	// Logging out again produces the same cleared state.
	require.NoError(t, svc.Logout(ctx))
	require.Equal(t, models.Session{}, store.Read())
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := NewAuthService(&fakeClient{}, setupStore(t), testLogger())

	err := svc.Register(context.Background(), api.RegisterRequest{
		Username: "carol", Email: "not-an-email", Password: "pw", Role: "Staff",
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "email must be a valid email")
}

func TestAuthService_Register_PassesThrough(t *testing.T) {
	client := &fakeClient{}
	svc := NewAuthService(client, setupStore(t), testLogger())

	req := api.RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "pw", Role: "Staff"}
	require.NoError(t, svc.Register(context.Background(), req))
	require.Equal(t, req, client.lastRegisterReq)
}

func TestAuthService_Register_ServerMessageSurfaces(t *testing.T) {
	client := &fakeClient{registerErr: &api.APIError{Status: 400, Message: "username already taken"}}
	svc := NewAuthService(client, setupStore(t), testLogger())

	err := svc.Register(context.Background(), api.RegisterRequest{
		Username: "carol", Email: "carol@example.com", Password: "pw", Role: "Staff",
	})
	var apiErr *api.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "username already taken", apiErr.Message)
}
