package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errMissingSubject = errors.New("token missing subject claim")

const defaultJWKSURL = "https://www.googleapis.com/service_accounts/v1/jwk/securetoken@system.gserviceaccount.com"

// firebaseVerifier validates Firebase-issued ID tokens using the securetoken JWKS.
type firebaseVerifier struct {
	jwks      *keyfunc.JWKS
	projectID string
}

func newFirebaseVerifier(cfg Config) (Verifier, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("firebase project id is required")
	}

	jwksURL := cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = defaultJWKSURL
	}

	options := keyfunc.Options{RefreshErrorHandler: func(err error) {
		// Intentionally swallow refresh errors; the handler will log downstream if required.
	}}

	jwks, err := keyfunc.Get(jwksURL, options)
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS: %w", err)
	}

	return &firebaseVerifier{jwks: jwks, projectID: cfg.ProjectID}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (AuthenticatedUser, error) {
	// Firebase ID tokens carry the project id as audience and securetoken.google.com/<project> as issuer.
	options := []jwt.ParserOption{
		jwt.WithLeeway(5 * time.Second),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer("https://securetoken.google.com/" + v.projectID),
	}

	t, err := jwt.Parse(token, v.jwks.Keyfunc, options...)
	if err != nil {
		return AuthenticatedUser{}, fmt.Errorf("token verification failed: %w", err)
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return AuthenticatedUser{}, errors.New("unexpected claims type")
	}

	subjectRaw, ok := claims["sub"].(string)
	if !ok || subjectRaw == "" {
		return AuthenticatedUser{}, errMissingSubject
	}

	email, _ := claims["email"].(string)

	expiresAt := int64(0)
	if expRaw, ok := claims["exp"].(float64); ok {
		expiresAt = int64(expRaw)
	}

	return AuthenticatedUser{
		UserID:    subjectRaw,
		Email:     email,
		ExpiresAt: expiresAt,
		Token:     token,
	}, nil
}
