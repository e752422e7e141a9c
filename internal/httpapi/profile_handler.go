package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/profile"
)

// RegisterProfileRoutes wires the profile routes onto the provided router.
func RegisterProfileRoutes(r chi.Router, svc *profile.Service) {
	h := &profileHandler{service: svc}

	r.Get("/v1/profile", h.get)
	r.Patch("/v1/profile/preferences", h.updatePreferences)
}

type profileHandler struct {
	service *profile.Service
}

func (h *profileHandler) get(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := h.service.Get(r.Context(), user.UserID)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *profileHandler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var prefs profile.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	p, err := h.service.UpdatePreferences(r.Context(), user.UserID, prefs)
	if err != nil {
		respondProfileError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func respondProfileError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, profile.ErrNotFound):
		writeError(w, http.StatusNotFound, "profile not found")
	case errors.Is(err, profile.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, trimValidationMessage(err))
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
