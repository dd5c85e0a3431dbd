package cli

import (
	"context"
	"fmt"

	"feedbackdesk/internal/client/views"
)

func (a *App) getStatus() string {
	sess := a.store.Read()
	if !sess.IsLoggedIn {
		return "(logged out)"
	}
	return fmt.Sprintf("(%s)", sess.Role)
}

// Root prints the banner, announces where a restored session lands, and
// hands control to the REPL.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to feedbackdesk (type 'help' for commands)")

	// A session persisted by a previous run may still be live.
	if landing := a.auth.ResolveLandingView(); landing != views.Login {
		fmt.Fprintf(a.out, "Restored session, landing on %s\n", landing)
	} else {
		fmt.Fprintln(a.out, "Please 'login' or 'register' to begin")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}
