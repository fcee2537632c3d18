package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edenai/tutorchat/internal/client/api"
	"github.com/edenai/tutorchat/internal/client/tokenstore"
	"github.com/edenai/tutorchat/internal/models"
)

// fakeResolver scripts Me responses.
type fakeResolver struct {
	session *models.Session
	err     error
	calls   int
}

func (f *fakeResolver) Me(_ context.Context) (*models.Session, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

func newManager(t *testing.T, backend Resolver) (*Manager, *tokenstore.Store) {
	t.Helper()
	store := tokenstore.New(filepath.Join(t.TempDir(), "token"))
	return NewManager(store, backend, nil), store
}

func TestRestore_NoCredential(t *testing.T) {
	backend := &fakeResolver{}
	m, _ := newManager(t, backend)

	s, err := m.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Equal(t, Unauthenticated, m.State())
	assert.Zero(t, backend.calls, "no request is made without a credential")
}

func TestRestore_ValidCredential(t *testing.T) {
	backend := &fakeResolver{session: &models.Session{ID: 1, Email: "a@x.com", Role: models.RoleUser}}
	m, store := newManager(t, backend)
	require.NoError(t, store.Save("stored-token"))

	s, err := m.Restore(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, models.RoleUser, s.Role)
	assert.Equal(t, Authenticated, m.State())
	assert.Equal(t, s, m.Session())
}

func TestRestore_StaleCredentialIsCleared(t *testing.T) {
	backend := &fakeResolver{err: &api.AuthError{Status: 401, Message: "could not validate credentials"}}
	m, store := newManager(t, backend)
	require.NoError(t, store.Save("stale-token"))

	s, err := m.Restore(context.Background())
	require.Error(t, err)
	assert.Nil(t, s)
	assert.Nil(t, m.Session())
	assert.Equal(t, Unauthenticated, m.State())

	left, loadErr := store.Load()
	require.NoError(t, loadErr)
	assert.Empty(t, left, "rejected credential must be cleared")
}

func TestEstablish_PersistsThenResolves(t *testing.T) {
	backend := &fakeResolver{session: &models.Session{ID: 2, Email: "b@x.com", Role: models.RoleAdmin}}
	m, store := newManager(t, backend)

	s, err := m.Establish(context.Background(), "fresh-token")
	require.NoError(t, err)
	assert.True(t, s.IsAdmin())
	assert.Equal(t, Authenticated, m.State())

	stored, _ := store.Load()
	assert.Equal(t, "fresh-token", stored)
}

func TestEstablish_ResolutionFailureDiscardsToken(t *testing.T) {
	backend := &fakeResolver{err: &api.AuthError{Status: 401}}
	m, store := newManager(t, backend)

	_, err := m.Establish(context.Background(), "doomed-token")
	require.Error(t, err)
	assert.Equal(t, Unauthenticated, m.State())

	stored, _ := store.Load()
	assert.Empty(t, stored)
}

// The program renders from its own goroutine while resolution commands run
// on theirs, so State and Session must be safe to read mid-resolve. Run
// with the race detector.
func TestConcurrentReadsDuringResolve(t *testing.T) {
	backend := &fakeResolver{session: &models.Session{ID: 4, Email: "d@x.com", Role: models.RoleUser}}
	m, _ := newManager(t, backend)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 200; i++ {
			_, _ = m.Establish(context.Background(), "tok")
			_ = m.Logout()
		}
	}()

	for {
		select {
		case <-done:
			assert.Nil(t, m.Session())
			assert.Equal(t, Unauthenticated, m.State())
			return
		default:
			_ = m.State()
			if s := m.Session(); s != nil {
				_ = s.IsAdmin()
			}
		}
	}
}

func TestLogout_ClearsEverything(t *testing.T) {
	backend := &fakeResolver{session: &models.Session{ID: 3, Email: "c@x.com", Role: models.RoleUser}}
	m, store := newManager(t, backend)
	_, err := m.Establish(context.Background(), "tok")
	require.NoError(t, err)

	require.NoError(t, m.Logout())
	assert.Nil(t, m.Session())
	assert.Equal(t, Unauthenticated, m.State())
	stored, _ := store.Load()
	assert.Empty(t, stored)
}
