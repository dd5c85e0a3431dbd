// Package views maps session roles to the screens a client may present.
// It is a pure lookup, not a state machine: selection is keyed only by the
// role read from the credential store at render time, and anything the
// client does not recognise falls back to the login view, never a dashboard.
package views

import "feedbackdesk/internal/client/models"

// View names a client screen.
type View string

const (
	Login              View = "login"
	Register           View = "register"
	AdminDashboard     View = "admin-dashboard"
	AdminFeedbackTable View = "admin-feedback-table"
	AdminUserTable     View = "admin-user-table"
	StaffDashboard     View = "staff-dashboard"
	StaffFeedbackTable View = "staff-feedback-table"
	SubmitForm         View = "submit-form"
)

// roleViews is the full set of views each role may open.
var roleViews = map[models.Role][]View{
	models.RoleAdmin: {AdminDashboard, AdminFeedbackTable, AdminUserTable},
	models.RoleStaff: {StaffDashboard, StaffFeedbackTable, SubmitForm},
}

// landing is the dashboard each role starts on after login.
var landing = map[models.Role]View{
	models.RoleAdmin: AdminDashboard,
	models.RoleStaff: StaffDashboard,
}

// Landing returns the view a navigation entry point should present for the
// given session: the login view when not logged in or when the role is not
// recognised, otherwise the role's dashboard.
func Landing(s models.Session) View {
	if !s.IsLoggedIn {
		return Login
	}
	if v, ok := landing[s.Role]; ok {
		return v
	}
	return Login
}

// ForRole returns the views available to a role. Unknown roles get nothing,
// which callers must treat as "logged out".
func ForRole(r models.Role) []View {
	return roleViews[r]
}

// Allowed reports whether the role may open the view.
func Allowed(r models.Role, v View) bool {
	for _, av := range roleViews[r] {
		if av == v {
			return true
		}
	}
	return false
}
