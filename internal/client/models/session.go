// Package models contains the client-side data model: the session snapshot
// and the server-owned feedback/user records the client displays.
package models

// Role identifies which views and endpoints a session may use.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

// Known reports whether the role is one the client recognises. Anything
// else must be treated as "no role" by view selection.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Session is the client's authentication state. Tokens are opaque strings;
// no expiry is tracked locally. Invariant: IsLoggedIn implies AccessToken
// is non-empty.
type Session struct {
	AccessToken  string
	RefreshToken string
	IsLoggedIn   bool
	Role         Role
}

// Valid reports whether the session satisfies its own invariant.
func (s Session) Valid() bool {
	return !s.IsLoggedIn || s.AccessToken != ""
}
