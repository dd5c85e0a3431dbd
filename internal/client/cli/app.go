package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"feedbackdesk/internal/client/api"
	"feedbackdesk/internal/client/config"
	"feedbackdesk/internal/client/models"
	"feedbackdesk/internal/client/services"
	"feedbackdesk/internal/client/session"
	"feedbackdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the CLI together: configuration, the credential store, the API
// client and the services the command handlers call.
type App struct {
	config   *config.Config
	store    *session.Store
	auth     services.AuthService
	feedback services.FeedbackService
	log      logging.Logger
	reader   *bufio.Reader
	out      io.Writer

	// lastAdminFeed holds the most recently displayed admin feedback page,
	// the data set the 'export' command writes out.
	lastAdminFeed []models.FeedbackRecord
}

// NewApp opens the local session database, restores any persisted session
// and builds the service stack.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize session database", "error", err)
		return nil, err
	}

	store, err := session.NewStore(ctx, db)
	if err != nil {
		return nil, err
	}

	apiClient := api.NewRESTClient(c.ServerBaseURL, c.RequestTimeout, store, log)

	return &App{
		config:   c,
		store:    store,
		auth:     services.NewAuthService(apiClient, store, log),
		feedback: services.NewFeedbackService(apiClient, log),
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) currentRole() models.Role {
	sess := a.store.Read()
	if !sess.IsLoggedIn || !sess.Role.Known() {
		// Fail closed: treat anything unrecognised as logged out.
		return ""
	}
	return sess.Role
}

func (a *App) isLoggedIn() bool {
	return a.currentRole() != ""
}
