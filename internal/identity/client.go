package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Client talks to the Identity Toolkit REST API and fans session changes out
// to subscribed listeners.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string

	mu        sync.Mutex
	current   *Session
	listeners map[int]func(*Session)
	nextID    int
}

// NewClient creates an identity client. apiKey must be non-empty.
func NewClient(apiKey string) (*Client, error) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return nil, fmt.Errorf("identity api key is required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultBaseURL,
		apiKey:     key,
		listeners:  make(map[int]func(*Session)),
	}, nil
}

// Subscribe registers a listener for session changes. The listener is invoked
// immediately with the current session, then on every sign-in and sign-out.
func (c *Client) Subscribe(onChange func(*Session)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = onChange
	current := c.current
	c.mu.Unlock()

	onChange(current)

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// SignUp creates a new account and establishes a session.
func (c *Client) SignUp(ctx context.Context, email, password string) (*Session, error) {
	session, err := c.credentialRequest(ctx, "accounts:signUp", email, password)
	if err != nil {
		return nil, err
	}
	c.publish(session)
	return session, nil
}

// SignIn authenticates an existing account and establishes a session.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Session, error) {
	session, err := c.credentialRequest(ctx, "accounts:signInWithPassword", email, password)
	if err != nil {
		return nil, err
	}
	c.publish(session)
	return session, nil
}

// SignOut drops the local session and notifies listeners. ID tokens are
// short-lived bearer credentials; there is no server-side revocation call.
func (c *Client) SignOut(_ context.Context) error {
	c.publish(nil)
	return nil
}

func (c *Client) publish(session *Session) {
	c.mu.Lock()
	c.current = session
	targets := make([]func(*Session), 0, len(c.listeners))
	for _, listener := range c.listeners {
		targets = append(targets, listener)
	}
	c.mu.Unlock()

	for _, listener := range targets {
		listener(session)
	}
}

type credentialResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) credentialRequest(ctx context.Context, endpoint, email, password string) (*Session, error) {
	payload := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/" + endpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(body)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure apiError
		if err := json.NewDecoder(resp.Body).Decode(&failure); err != nil {
			return nil, fmt.Errorf("identity api status %d", resp.StatusCode)
		}
		return nil, mapAPIError(failure.Error.Message)
	}

	var success credentialResponse
	if err := json.NewDecoder(resp.Body).Decode(&success); err != nil {
		return nil, err
	}
	if success.LocalID == "" || success.IDToken == "" {
		return nil, fmt.Errorf("identity api returned incomplete credential")
	}

	expiresAt := time.Now()
	if seconds, err := strconv.Atoi(success.ExpiresIn); err == nil {
		expiresAt = expiresAt.Add(time.Duration(seconds) * time.Second)
	}

	return &Session{
		UID:          success.LocalID,
		Email:        success.Email,
		IDToken:      success.IDToken,
		RefreshToken: success.RefreshToken,
		ExpiresAt:    expiresAt,
	}, nil
}

func mapAPIError(message string) error {
	// The API reports codes like "WEAK_PASSWORD : Password should be at least 6 characters".
	code := message
	if idx := strings.IndexAny(code, " :"); idx >= 0 {
		code = code[:idx]
	}

	switch code {
	case "EMAIL_EXISTS":
		return ErrEmailExists
	case "EMAIL_NOT_FOUND":
		return ErrUserNotFound
	case "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return ErrInvalidCredentials
	case "WEAK_PASSWORD":
		return ErrWeakPassword
	case "USER_DISABLED":
		return ErrUserDisabled
	default:
		return fmt.Errorf("identity api error: %s", message)
	}
}
