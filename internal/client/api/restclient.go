package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/client/session"
	"feedbackdesk/internal/common"
	"feedbackdesk/internal/logging"
)

// RESTClient talks JSON over HTTP to the feedbackdesk backend. It reads the
// access token from the credential store on every call, and on a 401 it runs
// the refresh procedure exactly once and retries the original request exactly
// once with the new token. Refresh failure clears the credential store and
// surfaces common.ErrSessionExpired; every other failure propagates as-is
// with no retry.
type RESTClient struct {
	baseURL string
	http    *http.Client
	store   *session.Store
	log     logging.Logger
}

// NewRESTClient builds a client against baseURL ("http://host:port", no
// trailing slash required). The store supplies the bearer token and absorbs
// refresh results; it is the only state shared with the rest of the client.
func NewRESTClient(baseURL string, timeout time.Duration, store *session.Store, log logging.Logger) *RESTClient {
	return &RESTClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		store:   store,
		log:     log.With("component", "api"),
	}
}

func (c *RESTClient) Login(ctx context.Context, username, password string) (LoginResult, error) {
	body := map[string]string{"username": username, "password": password}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
		Role    string `json:"role"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login/", nil, body, &resp, false); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		Role:         models.Role(resp.Role),
	}, nil
}

func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register/", nil, req, nil, false)
}

func (c *RESTClient) SubmitFeedback(ctx context.Context, sub models.FeedbackSubmission) error {
	return c.do(ctx, http.MethodPost, "/feedback/submit/", nil, sub, nil, true)
}

func (c *RESTClient) AdminDashboard(ctx context.Context, q AdminFeedQuery) (models.AdminDashboard, error) {
	query := url.Values{}
	if q.Search != "" {
		query.Set("search", q.Search)
	}
	if q.Category != "" {
		query.Set("category", q.Category)
	}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}

	var out models.AdminDashboard
	err := c.do(ctx, http.MethodGet, "/feedback/dashboard/admin/", query, nil, &out, true)
	return out, err
}

func (c *RESTClient) StaffDashboard(ctx context.Context, page int) (models.StaffDashboard, error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var out models.StaffDashboard
	err := c.do(ctx, http.MethodGet, "/feedback/dashboard/staff/", query, nil, &out, true)
	return out, err
}

func (c *RESTClient) Analysis(ctx context.Context, filter string) (models.Analysis, error) {
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}

	var out models.Analysis
	err := c.do(ctx, http.MethodGet, "/feedback/analysis/", query, nil, &out, true)
	return out, err
}

func (c *RESTClient) ActiveUsers(ctx context.Context) ([]models.UserRecord, error) {
	var resp struct {
		ActiveUsers []models.UserRecord `json:"active_users"`
	}
	err := c.do(ctx, http.MethodGet, "/feedback/active-users/", nil, nil, &resp, true)
	return resp.ActiveUsers, err
}

func (c *RESTClient) DeleteUser(ctx context.Context, username string) error {
	return c.do(ctx, http.MethodDelete, "/feedback/"+url.PathEscape(username)+"/", nil, nil, nil, true)
}

func (c *RESTClient) DeleteFeedback(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/feedback/%d/delete/", id), nil, nil, nil, true)
}

func (c *RESTClient) EditFeedback(ctx context.Context, id int64, feedbackText string) error {
	body := map[string]string{"feedback_text": feedbackText}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/feedback/%d/edit/", id), nil, body, nil, true)
}

// do issues one logical request. The single-retry policy lives here:
// at most one refresh and one reissued call per invocation, never a loop.
func (c *RESTClient) do(ctx context.Context, method, path string, query url.Values, body, out any, needsAuth bool) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	var token string
	if needsAuth {
		token = c.store.Read().AccessToken
		if token == "" {
			return common.ErrNotLoggedIn
		}
	}

	status, respBody, err := c.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if needsAuth && status == http.StatusUnauthorized {
		c.log.Debug(ctx, "access token rejected, refreshing", "method", method, "path", path)

		newToken, err := c.refresh(ctx)
		if err != nil {
			return err
		}

		status, respBody, err = c.send(ctx, method, path, query, payload, newToken)
		if err != nil {
			return err
		}
	}

	return decodeResponse(status, respBody, out)
}

// refresh exchanges the stored refresh token for a new access token and
// persists it (refresh token and role untouched). Any failure (no token on
// hand, transport error, rejection, malformed body) clears the whole
// credential store and reports the session as expired. No retry or backoff
// of its own.
func (c *RESTClient) refresh(ctx context.Context) (string, error) {
	refreshToken := c.store.Read().RefreshToken
	if refreshToken == "" {
		return "", c.expireSession(ctx)
	}

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to encode refresh request: %w", err)
	}

	status, body, err := c.send(ctx, http.MethodPost, "/auth/token/refresh/", nil, payload, "")
	if err != nil || status < 200 || status > 299 {
		return "", c.expireSession(ctx)
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.Access == "" {
		return "", c.expireSession(ctx)
	}

	if err := c.store.SetAccessToken(ctx, resp.Access); err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	c.log.Debug(ctx, "access token refreshed")
	return resp.Access, nil
}

func (c *RESTClient) expireSession(ctx context.Context) error {
	if err := c.store.Clear(ctx); err != nil {
		c.log.Error(ctx, "failed to clear credential store", "error", err)
	}
	return common.ErrSessionExpired
}

// send performs a single HTTP round trip and reads the whole response body.
// Transport failures map onto common.ErrUnavailable.
func (c *RESTClient) send(ctx context.Context, method, path string, query url.Values, payload []byte, token string) (int, []byte, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set(common.RequestIDHeader, uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}

	return resp.StatusCode, body, nil
}

// decodeResponse maps the final status onto the error taxonomy and decodes a
// successful body into out when requested.
func decodeResponse(status int, body []byte, out any) error {
	switch {
	case status >= 200 && status <= 299:
		if out == nil || len(body) == 0 {
			return nil
		}
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
		return nil
	case status == http.StatusUnauthorized:
		return common.ErrUnauthorized
	default:
		return &APIError{Status: status, Message: serverMessage(body)}
	}
}

// serverMessage pulls a user-facing message out of an error body. The
// backend is inconsistent about the field name, so several are tried.
func serverMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, key := range []string{"message", "error", "detail"} {
		if v, ok := payload[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
