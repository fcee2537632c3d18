// Package session owns the credential lifecycle on the client. It is the
// single writer of both the token store and the resolved session; every
// other component reads through it.
package session

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/edenai/tutorchat/internal/models"
)

// State is the resolver's position in the auth lifecycle.
type State int

const (
	// Unauthenticated means no credential is held.
	Unauthenticated State = iota
	// Resolving means a credential is held but the identity behind it is
	// still being fetched.
	Resolving
	// Authenticated means the identity was resolved successfully.
	Authenticated
)

// Resolver resolves the identity behind the currently stored credential.
// It is satisfied by the api gateway's Me.
type Resolver interface {
	Me(ctx context.Context) (*models.Session, error)
}

// Credentials is the persistence contract for the bearer token.
type Credentials interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// Manager derives the Session from the stored credential and is the only
// component allowed to invalidate it. Resolution runs on command goroutines
// while the render loop reads State and Session, so all state access is
// serialized through mu. The lock is never held across a network call.
type Manager struct {
	tokens  Credentials
	backend Resolver
	log     *zap.Logger

	mu      sync.Mutex
	state   State
	session *models.Session
}

// NewManager builds a Manager in the Unauthenticated state.
func NewManager(tokens Credentials, backend Resolver, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{tokens: tokens, backend: backend, log: log}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Session returns the resolved identity, or nil when not authenticated.
func (m *Manager) Session() *models.Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

func (m *Manager) set(state State, session *models.Session) {
	m.mu.Lock()
	m.state = state
	m.session = session
	m.mu.Unlock()
}

// Restore re-derives the session from a previously stored credential at
// startup. A missing credential is terminal: no request is made and the
// manager stays Unauthenticated with a nil error. A stored credential that
// the backend rejects is cleared before the error is returned, so the UI
// lands on the auth screen rather than an error screen.
func (m *Manager) Restore(ctx context.Context) (*models.Session, error) {
	tok, err := m.tokens.Load()
	if err != nil {
		return nil, err
	}
	if tok == "" {
		m.set(Unauthenticated, nil)
		return nil, nil
	}
	return m.resolve(ctx)
}

// Establish persists a freshly issued credential and resolves the identity
// behind it. On resolution failure the credential is discarded again.
func (m *Manager) Establish(ctx context.Context, token string) (*models.Session, error) {
	if err := m.tokens.Save(token); err != nil {
		return nil, err
	}
	return m.resolve(ctx)
}

// resolve is the single invalidation path: any failure of the identity
// lookup clears the stored credential and forces the logged-out state. The
// client never inspects token contents or expiry; invalidity is always
// discovered reactively through a failed authenticated call.
func (m *Manager) resolve(ctx context.Context) (*models.Session, error) {
	m.set(Resolving, nil)
	s, err := m.backend.Me(ctx)
	if err != nil {
		m.log.Info("credential rejected, clearing", zap.Error(err))
		_ = m.tokens.Clear()
		m.set(Unauthenticated, nil)
		return nil, err
	}
	m.set(Authenticated, s)
	return s, nil
}

// Logout clears the credential and the session. Also used by the shell to
// roll back an admin login whose resolved role turned out insufficient.
func (m *Manager) Logout() error {
	err := m.tokens.Clear()
	m.set(Unauthenticated, nil)
	return err
}
