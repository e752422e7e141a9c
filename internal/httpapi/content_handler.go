package httpapi

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/memes"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/videos"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/weather"
)

// RegisterContentRoutes wires the public catalog routes: video search, meme
// search and weather tips. None require authentication.
func RegisterContentRoutes(r chi.Router, videoClient *videos.Client, memeClient *memes.Client, weatherClient *weather.Client, logger *slog.Logger) {
	h := &contentHandler{
		videos:  videoClient,
		memes:   memeClient,
		weather: weatherClient,
		logger:  logger,
	}

	r.Get("/v1/videos", h.searchVideos)
	r.Get("/v1/memes", h.searchMemes)
	r.Get("/v1/weather", h.weatherTips)
}

type contentHandler struct {
	videos  *videos.Client
	memes   *memes.Client
	weather *weather.Client
	logger  *slog.Logger
}

type weatherResponse struct {
	Conditions  weather.Conditions   `json:"conditions"`
	Suggestions []weather.Suggestion `json:"suggestions"`
}

func (h *contentHandler) searchVideos(w http.ResponseWriter, r *http.Request) {
	if h.videos == nil {
		writeError(w, http.StatusServiceUnavailable, "video search is not configured")
		return
	}

	query := r.URL.Query().Get("q")
	max := parsePositiveInt(r.URL.Query().Get("max"), 0)

	results, err := h.videos.Search(r.Context(), query, max)
	if err != nil {
		h.logger.Warn("video search failed", "error", err)
		writeError(w, http.StatusBadGateway, "video search unavailable")
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *contentHandler) searchMemes(w http.ResponseWriter, r *http.Request) {
	if h.memes == nil {
		writeError(w, http.StatusServiceUnavailable, "meme search is not configured")
		return
	}

	query := r.URL.Query().Get("q")
	limit := parsePositiveInt(r.URL.Query().Get("limit"), 0)

	results, err := h.memes.Search(r.Context(), query, limit)
	if err != nil {
		h.logger.Warn("meme search failed", "error", err)
		writeError(w, http.StatusBadGateway, "meme search unavailable")
		return
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *contentHandler) weatherTips(w http.ResponseWriter, r *http.Request) {
	if h.weather == nil {
		writeError(w, http.StatusServiceUnavailable, "weather is not configured")
		return
	}

	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		writeError(w, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}

	conditions, err := h.weather.Current(r.Context(), lat, lon)
	if err != nil {
		h.logger.Warn("weather fetch failed", "error", err)
		writeError(w, http.StatusBadGateway, "weather unavailable")
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		Conditions:  conditions,
		Suggestions: weather.Suggestions(conditions),
	})
}
