package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/identity"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/profile"
)

// RegisterAuthRoutes wires the credential endpoints. These are public: the
// caller has no token yet.
func RegisterAuthRoutes(r chi.Router, provider identity.Provider, profiles *profile.Service, logger *slog.Logger) {
	h := &authHandler{provider: provider, profiles: profiles, logger: logger}

	r.Post("/v1/auth/signup", h.signUp)
	r.Post("/v1/auth/signin", h.signIn)
	r.Post("/v1/auth/signout", h.signOut)
}

type authHandler struct {
	provider identity.Provider
	profiles *profile.Service
	logger   *slog.Logger
}

type credentialsRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName"`
}

type sessionResponse struct {
	UID          string    `json:"uid"`
	Email        string    `json:"email"`
	IDToken      string    `json:"idToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func (h *authHandler) signUp(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	session, err := h.provider.SignUp(r.Context(), body.Email, body.Password)
	if err != nil {
		respondIdentityError(w, err)
		return
	}

	h.ensureProfile(r.Context(), session, body.DisplayName)
	writeJSON(w, http.StatusCreated, sessionResponse(*session))
}

func (h *authHandler) signIn(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	session, err := h.provider.SignIn(r.Context(), body.Email, body.Password)
	if err != nil {
		respondIdentityError(w, err)
		return
	}

	h.ensureProfile(r.Context(), session, body.DisplayName)
	writeJSON(w, http.StatusOK, sessionResponse(*session))
}

func (h *authHandler) signOut(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.SignOut(r.Context()); err != nil {
		respondIdentityError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *authHandler) decodeCredentials(w http.ResponseWriter, r *http.Request) (credentialsRequest, bool) {
	var body credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return body, false
	}

	body.Email = strings.TrimSpace(body.Email)
	if body.Email == "" || body.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return body, false
	}
	return body, true
}

// ensureProfile creates the profile document with default preferences on first
// contact. A failure here does not fail the sign-in; the profile is ensured
// again on the next one.
func (h *authHandler) ensureProfile(ctx context.Context, session *identity.Session, displayName string) {
	if h.profiles == nil {
		return
	}
	if _, err := h.profiles.Ensure(ctx, session.UID, session.Email, displayName); err != nil {
		h.logger.Warn("profile ensure failed", "uid", session.UID, "error", err)
	}
}

func respondIdentityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, identity.ErrEmailExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, identity.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, identity.ErrInvalidCredentials), errors.Is(err, identity.ErrUserNotFound):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, identity.ErrUserDisabled):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, identity.ErrProviderUnavailable):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
