package session

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"feedbackdesk/internal/client/models"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	dbSeq++
	dsn := fmt.Sprintf("file:store%d?mode=memory&cache=shared", dbSeq)
	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(ctx, db)
	require.NoError(t, err)
	return store
}

func TestStore_SaveAndRead(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	sess := models.Session{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		IsLoggedIn:   true,
		Role:         models.RoleAdmin,
	}
	require.NoError(t, store.Save(ctx, sess))
	require.Equal(t, sess, store.Read())
}

func TestStore_SurvivesReload(t *testing.T) {
	ctx := context.Background()
	dbSeq++
	dsn := fmt.Sprintf("file:reload%d?mode=memory&cache=shared", dbSeq)
	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	store, err := NewStore(ctx, db)
	require.NoError(t, err)
	sess := models.Session{AccessToken: "tok1", RefreshToken: "ref1", IsLoggedIn: true, Role: models.RoleStaff}
	require.NoError(t, store.Save(ctx, sess))

	// A second store over the same database sees the persisted session.
	reloaded, err := NewStore(ctx, db)
	require.NoError(t, err)
	require.Equal(t, sess, reloaded.Read())
}

func TestStore_SetAccessTokenKeepsRest(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, models.Session{
		AccessToken:  "tok1",
		RefreshToken: "ref1",
		IsLoggedIn:   true,
		Role:         models.RoleStaff,
	}))
	require.NoError(t, store.SetAccessToken(ctx, "tok2"))

	got := store.Read()
	require.Equal(t, "tok2", got.AccessToken)
	require.Equal(t, "ref1", got.RefreshToken)
	require.True(t, got.IsLoggedIn)
	require.Equal(t, models.RoleStaff, got.Role)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := setupStore(t)

	require.NoError(t, store.Save(ctx, models.Session{
		AccessToken: "tok1", RefreshToken: "ref1", IsLoggedIn: true, Role: models.RoleAdmin,
	}))

	require.NoError(t, store.Clear(ctx))
	require.Equal(t, models.Session{}, store.Read())

	// Second clear yields the same state.
	require.NoError(t, store.Clear(ctx))
	require.Equal(t, models.Session{}, store.Read())
}

func TestNewStore_DemotesInvalidPersistedState(t *testing.T) {
	ctx := context.Background()
	dbSeq++
	dsn := fmt.Sprintf("file:invalid%d?mode=memory&cache=shared", dbSeq)
	db, err := OpenDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	// Logged-in flag without an access token violates the invariant.
	seed := func(db *sql.DB, k, v string) {
		_, err := db.Exec(`INSERT INTO session(key, value) VALUES(?, ?)`, k, v)
		require.NoError(t, err)
	}
	seed(db, "is_logged_in", "true")
	seed(db, "role", "Admin")

	store, err := NewStore(ctx, db)
	require.NoError(t, err)
	require.False(t, store.Read().IsLoggedIn)
}
