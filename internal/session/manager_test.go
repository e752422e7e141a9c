package session

import (
	"context"
	"testing"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/identity"
)

// fakeProvider delivers session events synchronously to a single listener.
type fakeProvider struct {
	listener     func(*identity.Session)
	initial      *identity.Session
	unsubscribed int
}

func (f *fakeProvider) Subscribe(onChange func(*identity.Session)) func() {
	f.listener = onChange
	onChange(f.initial)
	return func() { f.unsubscribed++ }
}

func (f *fakeProvider) SignUp(context.Context, string, string) (*identity.Session, error) {
	return nil, nil
}

func (f *fakeProvider) SignIn(context.Context, string, string) (*identity.Session, error) {
	return nil, nil
}

func (f *fakeProvider) SignOut(context.Context) error { return nil }

func (f *fakeProvider) emit(s *identity.Session) {
	if f.listener != nil {
		f.listener(s)
	}
}

func TestNewManager_NilProviderResolvesAnonymous(t *testing.T) {
	m := NewManager(nil)
	defer m.Close()

	if got := m.State(); got != StateAnonymous {
		t.Fatalf("expected anonymous state, got %q", got)
	}
	if uid := m.CurrentUID(); uid != "" {
		t.Errorf("expected empty uid, got %q", uid)
	}
	session, loading := m.Current()
	if session != nil || loading {
		t.Errorf("expected nil session and loading=false, got %v, %v", session, loading)
	}
}

func TestNewManager_FirstEventEndsLoading(t *testing.T) {
	provider := &fakeProvider{initial: &identity.Session{UID: "user-1", Email: "a@example.com"}}
	m := NewManager(provider)
	defer m.Close()

	if got := m.State(); got != StateAuthenticated {
		t.Fatalf("expected authenticated state, got %q", got)
	}
	if uid := m.CurrentUID(); uid != "user-1" {
		t.Errorf("expected user-1, got %q", uid)
	}
}

func TestManager_SignOutEventClearsTheSession(t *testing.T) {
	provider := &fakeProvider{initial: &identity.Session{UID: "user-1"}}
	m := NewManager(provider)
	defer m.Close()

	provider.emit(nil)

	if got := m.State(); got != StateAnonymous {
		t.Fatalf("expected anonymous after sign-out event, got %q", got)
	}
	if uid := m.CurrentUID(); uid != "" {
		t.Errorf("expected empty uid, got %q", uid)
	}
}

func TestManager_LatestEventWins(t *testing.T) {
	provider := &fakeProvider{}
	m := NewManager(provider)
	defer m.Close()

	provider.emit(&identity.Session{UID: "user-1"})
	provider.emit(nil)
	provider.emit(&identity.Session{UID: "user-2"})

	if uid := m.CurrentUID(); uid != "user-2" {
		t.Fatalf("expected the latest session to win, got %q", uid)
	}
}

func TestManager_CloseUnsubscribesOnce(t *testing.T) {
	provider := &fakeProvider{}
	m := NewManager(provider)

	m.Close()
	m.Close()

	if provider.unsubscribed != 1 {
		t.Fatalf("expected exactly one unsubscribe, got %d", provider.unsubscribed)
	}
}
