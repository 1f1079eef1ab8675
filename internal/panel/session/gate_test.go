package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"portfolio-admin/internal/domain/portfolio"
	"portfolio-admin/internal/panel/recordstore"
	"portfolio-admin/internal/panel/session"
	"portfolio-admin/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGate(t *testing.T, ts *testutil.Server, store session.TokenStore) *session.Gate {
	t.Helper()
	g, err := session.New(recordstore.New(ts.URL, testutil.APIKey), store)
	require.NoError(t, err)
	return g
}

func TestGate_LoginLogout(t *testing.T) {
	ts := testutil.NewServer(t)
	g := newGate(t, ts, session.NewMemoryStore())
	ctx := context.Background()

	assert.Equal(t, session.Unauthenticated, g.State())
	assert.ErrorIs(t, g.Require(), session.ErrUnauthenticated)

	require.NoError(t, g.Login(ctx, testutil.AdminUsername, testutil.AdminPassword))
	assert.Equal(t, session.Authenticated, g.State())
	assert.Equal(t, testutil.AdminUsername, g.Username())

	skills := recordstore.NewResource[portfolio.Skill](g.Client(), "skills")
	_, err := skills.List(ctx)
	require.NoError(t, err)

	require.NoError(t, g.Logout(ctx))
	assert.False(t, g.Authenticated())

	_, err = skills.List(ctx)
	assert.ErrorIs(t, g.Check(err), session.ErrUnauthenticated)
}

func TestGate_InvalidCredentials(t *testing.T) {
	ts := testutil.NewServer(t)
	g := newGate(t, ts, session.NewMemoryStore())

	err := g.Login(context.Background(), testutil.AdminUsername, "wrong")
	assert.ErrorIs(t, err, session.ErrInvalidCredentials)
	assert.False(t, g.Authenticated())
}

func TestGate_RejectedTokenEndsSession(t *testing.T) {
	ts := testutil.NewServer(t)
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Token{Value: "forged", ExpiresAt: time.Now().Add(time.Hour)}))

	g := newGate(t, ts, store)
	require.True(t, g.Authenticated())

	_, err := recordstore.NewResource[portfolio.Skill](g.Client(), "skills").List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, g.Check(err), session.ErrUnauthenticated)
	assert.False(t, g.Authenticated())

	stored, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestGate_ExpiredTokenIgnored(t *testing.T) {
	ts := testutil.NewServer(t)
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(&session.Token{Value: "old", ExpiresAt: time.Now().Add(-time.Minute)}))

	g := newGate(t, ts, store)
	assert.False(t, g.Authenticated())

	_, err := g.Token()
	assert.ErrorIs(t, err, session.ErrUnauthenticated)
}

func TestGate_CheckPassesOtherErrors(t *testing.T) {
	ts := testutil.NewServer(t)
	g := newGate(t, ts, session.NewMemoryStore())

	other := errors.New("boom")
	assert.Equal(t, other, g.Check(other))
	assert.NoError(t, g.Check(nil))
}

func TestFileStore_SurvivesRestart(t *testing.T) {
	ts := testutil.NewServer(t)
	path := filepath.Join(t.TempDir(), "nested", "token.json")

	g := newGate(t, ts, session.NewFileStore(path))
	require.NoError(t, g.Login(context.Background(), testutil.AdminUsername, testutil.AdminPassword))

	restarted := newGate(t, ts, session.NewFileStore(path))
	assert.True(t, restarted.Authenticated())
	assert.Equal(t, testutil.AdminUsername, restarted.Username())

	require.NoError(t, restarted.Logout(context.Background()))
	tok, err := session.NewFileStore(path).Load()
	require.NoError(t, err)
	assert.Nil(t, tok)
}
