package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient("test-key")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	client.baseURL = srv.URL
	return client, srv
}

func credentialHandler(t *testing.T, wantEndpoint string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/"+wantEndpoint) {
			t.Errorf("unexpected endpoint %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("expected api key in query, got %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if payload["returnSecureToken"] != true {
			t.Error("expected returnSecureToken=true")
		}

		json.NewEncoder(w).Encode(map[string]string{
			"localId":      "uid-1",
			"email":        payload["email"].(string),
			"idToken":      "token-1",
			"refreshToken": "refresh-1",
			"expiresIn":    "3600",
		})
	}
}

func apiErrorHandler(message string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": message},
		})
	}
}

func TestSignIn_ReturnsSessionAndNotifiesListeners(t *testing.T) {
	client, _ := newTestClient(t, credentialHandler(t, "accounts:signInWithPassword"))

	var events []*Session
	unsubscribe := client.Subscribe(func(s *Session) { events = append(events, s) })
	defer unsubscribe()

	session, err := client.SignIn(context.Background(), "a@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	if session.UID != "uid-1" || session.IDToken != "token-1" {
		t.Errorf("unexpected session: %+v", session)
	}
	if session.ExpiresAt.IsZero() {
		t.Error("expected a resolved expiry")
	}

	// One immediate nil event on subscribe, then the sign-in.
	if len(events) != 2 || events[0] != nil || events[1] == nil {
		t.Fatalf("unexpected event sequence: %v", events)
	}
	if events[1].UID != "uid-1" {
		t.Errorf("expected listener to see uid-1, got %q", events[1].UID)
	}
}

func TestSignUp_UsesSignUpEndpoint(t *testing.T) {
	client, _ := newTestClient(t, credentialHandler(t, "accounts:signUp"))

	session, err := client.SignUp(context.Background(), "new@example.com", "secret123")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if session.Email != "new@example.com" {
		t.Errorf("unexpected email %q", session.Email)
	}
}

func TestSignOut_PublishesNilSession(t *testing.T) {
	client, _ := newTestClient(t, credentialHandler(t, "accounts:signInWithPassword"))

	if _, err := client.SignIn(context.Background(), "a@example.com", "secret123"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var last *Session
	unsubscribe := client.Subscribe(func(s *Session) { last = s })
	defer unsubscribe()

	if last == nil || last.UID != "uid-1" {
		t.Fatalf("expected current session on subscribe, got %v", last)
	}

	if err := client.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	if last != nil {
		t.Fatalf("expected nil session after sign-out, got %+v", last)
	}
}

func TestCredentialRequest_MapsAPIErrorCodes(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{name: "email exists", message: "EMAIL_EXISTS", want: ErrEmailExists},
		{name: "email not found", message: "EMAIL_NOT_FOUND", want: ErrUserNotFound},
		{name: "invalid password", message: "INVALID_PASSWORD", want: ErrInvalidCredentials},
		{name: "invalid login credentials", message: "INVALID_LOGIN_CREDENTIALS", want: ErrInvalidCredentials},
		{name: "weak password with detail", message: "WEAK_PASSWORD : Password should be at least 6 characters", want: ErrWeakPassword},
		{name: "user disabled", message: "USER_DISABLED", want: ErrUserDisabled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			client, _ := newTestClient(t, apiErrorHandler(tc.message))

			_, err := client.SignIn(context.Background(), "a@example.com", "secret123")
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSubscribe_UnsubscribeStopsEvents(t *testing.T) {
	client, _ := newTestClient(t, credentialHandler(t, "accounts:signInWithPassword"))

	count := 0
	unsubscribe := client.Subscribe(func(*Session) { count++ })
	unsubscribe()

	if _, err := client.SignIn(context.Background(), "a@example.com", "secret123"); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	// Only the immediate subscribe-time event should have fired.
	if count != 1 {
		t.Fatalf("expected 1 event, got %d", count)
	}
}
