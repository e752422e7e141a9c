package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/activity"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
)

// RegisterActivityRoutes wires the per-user activity routes onto the provided router.
func RegisterActivityRoutes(r chi.Router, svc *activity.Service) {
	h := &activityHandler{service: svc}

	r.Route("/v1/mood/logs", func(r chi.Router) {
		r.Get("/", h.listMoodLogs)
		r.Post("/", h.appendMoodLog)
	})

	r.Route("/v1/videos/history", func(r chi.Router) {
		r.Get("/", h.listVideoHistory)
		r.Post("/", h.appendVideoHistory)
	})

	r.Route("/v1/memes/saved", func(r chi.Router) {
		r.Get("/", h.listSavedMemes)
		r.Post("/", h.saveMeme)
		r.Delete("/{id}", h.removeMeme)
	})

	r.Get("/v1/stats", h.stats)
}

type activityHandler struct {
	service *activity.Service
}

func (h *activityHandler) appendMoodLog(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body activity.MoodLogInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.service.For(user.UserID).LogMood(r.Context(), body); err != nil {
		respondActivityError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *activityHandler) listMoodLogs(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := parsePositiveInt(r.URL.Query().Get("limit"), activity.DefaultMoodLogLimit)
	logs, err := h.service.For(user.UserID).MoodHistory(r.Context(), limit)
	if err != nil {
		respondActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, logs)
}

func (h *activityHandler) appendVideoHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body activity.VideoHistoryInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.service.For(user.UserID).AddVideoToHistory(r.Context(), body); err != nil {
		respondActivityError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *activityHandler) listVideoHistory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := parsePositiveInt(r.URL.Query().Get("limit"), activity.DefaultVideoHistoryLimit)
	entries, err := h.service.For(user.UserID).VideoHistory(r.Context(), limit)
	if err != nil {
		respondActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *activityHandler) saveMeme(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body activity.SaveMemeInput
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if err := h.service.For(user.UserID).SaveMeme(r.Context(), body); err != nil {
		respondActivityError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *activityHandler) removeMeme(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.For(user.UserID).RemoveMeme(r.Context(), id); err != nil {
		respondActivityError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *activityHandler) listSavedMemes(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	memes, err := h.service.For(user.UserID).SavedMemes(r.Context())
	if err != nil {
		respondActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, memes)
}

func (h *activityHandler) stats(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	stats, err := h.service.For(user.UserID).Stats(r.Context())
	if err != nil {
		respondActivityError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

func respondActivityError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, activity.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, trimValidationMessage(err))
	case errors.Is(err, activity.ErrRepository):
		writeError(w, http.StatusBadGateway, "activity store unavailable")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
