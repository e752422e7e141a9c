package identity

import (
	"context"
	"errors"
	"time"
)

// Session represents an authenticated session issued by the identity provider.
type Session struct {
	UID          string
	Email        string
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time
}

// Provider exposes the identity operations the application consumes. A nil
// session delivered to a listener means the user signed out.
type Provider interface {
	// Subscribe registers a session-change listener and returns an unsubscribe func.
	// The listener fires immediately with the current session.
	Subscribe(onChange func(*Session)) (unsubscribe func())
	SignUp(ctx context.Context, email, password string) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context) error
}

// Stable error values distinguishable by callers regardless of transport detail.
var (
	ErrEmailExists        = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("no account for this email")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrUserDisabled       = errors.New("account is disabled")
	ErrProviderUnavailable = errors.New("identity provider unavailable")
)
