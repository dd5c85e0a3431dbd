// Package session implements the credential store: the single shared
// mutable resource of the client. It keeps an in-memory snapshot of the
// current session and mirrors every change into the local sqlite database,
// so tokens and role survive process restarts the way browser storage
// survives page reloads.
package session

import (
	"context"
	"database/sql"
	"sync"

	"feedbackdesk/internal/client/models"
	repo "feedbackdesk/internal/client/repositories/session"
	"feedbackdesk/internal/dbx"
)

// Persisted keys. They mirror the fields of models.Session.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyIsLoggedIn   = "is_logged_in"
	keyRole         = "role"
)

// Store holds the current session. Save, SetAccessToken and Clear write the
// database first and only then swap the in-memory snapshot, so a reader
// never observes a partially written session. Readers must still assume the
// session can change between reading a token and using it (a concurrent
// refresh or logout); the last write wins.
type Store struct {
	mu  sync.RWMutex
	cur models.Session
	db  *sql.DB
}

// NewStore loads the persisted session from db and returns a store around
// it. A persisted state that violates the session invariant (logged-in flag
// without an access token) is demoted to logged-out rather than trusted.
func NewStore(ctx context.Context, db *sql.DB) (*Store, error) {
	r := repo.NewSQLiteRepository(db)
	state, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	cur := models.Session{
		AccessToken:  state[keyAccessToken],
		RefreshToken: state[keyRefreshToken],
		IsLoggedIn:   state[keyIsLoggedIn] == "true",
		Role:         models.Role(state[keyRole]),
	}
	if !cur.Valid() {
		cur.IsLoggedIn = false
	}

	return &Store{cur: cur, db: db}, nil
}

// Read returns a snapshot of the current session.
func (s *Store) Read() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Save overwrites the whole session. All four fields are written in one
// transaction so no partial state is ever durable.
func (s *Store) Save(ctx context.Context, sess models.Session) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := repo.NewSQLiteRepository(tx)
		if err := r.Set(ctx, keyAccessToken, sess.AccessToken); err != nil {
			return err
		}
		if err := r.Set(ctx, keyRefreshToken, sess.RefreshToken); err != nil {
			return err
		}
		if err := r.Set(ctx, keyIsLoggedIn, boolString(sess.IsLoggedIn)); err != nil {
			return err
		}
		return r.Set(ctx, keyRole, string(sess.Role))
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return nil
}

// SetAccessToken replaces only the access token, leaving refresh token and
// role untouched. Used by the refresh procedure.
func (s *Store) SetAccessToken(ctx context.Context, token string) error {
	r := repo.NewSQLiteRepository(s.db)
	if err := r.Set(ctx, keyAccessToken, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur.AccessToken = token
	s.mu.Unlock()
	return nil
}

// Clear resets the session to its zero value, in memory and on disk.
// Clearing an already-empty store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	r := repo.NewSQLiteRepository(s.db)
	if err := r.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = models.Session{}
	s.mu.Unlock()
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
