package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/activity"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/mood"
)

// RegisterMoodRoutes wires the mood-analysis route onto the provided router.
func RegisterMoodRoutes(r chi.Router, analyzer mood.Analyzer, activities *activity.Service, logger *slog.Logger) {
	h := &moodHandler{analyzer: analyzer, activities: activities, logger: logger}

	r.Post("/v1/mood/analyze", h.analyze)
}

type moodHandler struct {
	analyzer   mood.Analyzer
	activities *activity.Service
	logger     *slog.Logger
}

type analyzeRequest struct {
	Text       string   `json:"text"`
	Activities []string `json:"activities"`
}

func (h *moodHandler) analyze(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var body analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	analysis, err := h.analyzer.Analyze(r.Context(), body.Text)
	if err != nil {
		if errors.Is(err, mood.ErrEmptyInput) {
			writeError(w, http.StatusBadRequest, "text is required")
			return
		}
		h.logger.Warn("mood analysis failed", "error", err)
		writeError(w, http.StatusBadGateway, "mood analysis unavailable")
		return
	}

	// The analysis is also recorded as a mood log. A failed append does not
	// fail the request: the analysis itself succeeded.
	logErr := h.activities.For(user.UserID).LogMood(r.Context(), activity.MoodLogInput{
		Mood:       analysis.Mood,
		Intensity:  analysis.Intensity,
		Activities: body.Activities,
		Notes:      body.Text,
	})
	if logErr != nil {
		h.logger.Warn("mood log append after analysis failed", "uid", user.UserID, "error", logErr)
	}

	writeJSON(w, http.StatusOK, analysis)
}
