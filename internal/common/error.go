// Package common defines shared constants and sentinel errors used across
// the feedbackdesk client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotLoggedIn        = errors.New("not logged in")

	// Session lifecycle errors.
	ErrSessionExpired = errors.New("session expired")
	ErrUnknownRole    = errors.New("unknown role")
)
