package session

import (
	"sync"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/identity"
)

// State describes where the manager sits in its lifecycle.
type State string

const (
	// StateLoading means the first provider event has not yet arrived.
	StateLoading State = "loading"
	// StateAuthenticated means a session with a uid is bound.
	StateAuthenticated State = "authenticated"
	// StateAnonymous means the provider resolved to signed-out.
	StateAnonymous State = "anonymous"
)

// Manager holds the single authoritative (current session, loading) pair for
// the application. It owns one provider subscription for its lifetime and is
// intended to be constructed once in main and injected where identity is
// needed.
type Manager struct {
	mu          sync.RWMutex
	current     *identity.Session
	loading     bool
	unsubscribe func()
}

// NewManager subscribes to the provider's session-change feed. A nil provider
// (for example when provider initialization failed) resolves immediately to
// anonymous rather than staying in the loading state forever.
func NewManager(provider identity.Provider) *Manager {
	m := &Manager{loading: true}

	if provider == nil {
		m.loading = false
		return m
	}

	// Events are delivered in order by the provider; each one overwrites the
	// previous session, so a rapid sign-out/sign-in leaves the latest winner.
	m.unsubscribe = provider.Subscribe(m.onSessionChange)
	return m
}

func (m *Manager) onSessionChange(session *identity.Session) {
	m.mu.Lock()
	m.current = session
	m.loading = false
	m.mu.Unlock()
}

// Current returns the bound session (nil when signed out) and whether the
// manager is still waiting for the first provider event.
func (m *Manager) Current() (*identity.Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current, m.loading
}

// CurrentUID returns the stable partition key for repository calls, or the
// empty string when no user is bound.
func (m *Manager) CurrentUID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.UID
}

// State reports the manager's lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch {
	case m.loading:
		return StateLoading
	case m.current != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Close releases the provider subscription. Safe to call more than once.
func (m *Manager) Close() {
	m.mu.Lock()
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}
