package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/go-chi/chi/v5"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/activity"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/appointments"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/config"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/httpapi"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/identity"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/logging"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/memes"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/mood"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/profile"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/server"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/session"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/videos"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/weather"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Errorf("config error: %w", err))
	}

	logger := logging.NewLogger("wellness-hub")

	activityRepo, profileRepo, appointmentRepo, cleanup, err := newRepositories(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("repository init error: %w", err))
	}
	defer cleanup()

	// Identity is optional. Without an API key the credential endpoints are
	// absent and the session manager starts anonymous.
	var provider identity.Provider
	if cfg.Identity.APIKey != "" {
		client, err := identity.NewClient(cfg.Identity.APIKey)
		if err != nil {
			panic(fmt.Errorf("identity client init error: %w", err))
		}
		provider = client
	}

	sessions := session.NewManager(provider)
	defer sessions.Close()

	activityService, err := activity.NewService(activityRepo, sessions, logger)
	if err != nil {
		panic(fmt.Errorf("activity service init error: %w", err))
	}

	profileService, err := profile.NewService(profileRepo)
	if err != nil {
		panic(fmt.Errorf("profile service init error: %w", err))
	}

	appointmentService, err := appointments.NewService(appointmentRepo, appointments.NewSystemClock(), appointments.NewUUIDGenerator())
	if err != nil {
		panic(fmt.Errorf("appointment service init error: %w", err))
	}

	analyzer := newAnalyzer(ctx, cfg, logger)
	defer func() { _ = analyzer.Close() }()

	verifier, err := auth.NewVerifier(auth.Config{
		Mode:      cfg.Auth.Mode,
		JWKSURL:   cfg.Auth.JWKSURL,
		ProjectID: cfg.GCPProjectID,
	})
	if err != nil {
		panic(fmt.Errorf("auth verifier error: %w", err))
	}

	videoClient := newVideoClient(cfg, logger)
	memeClient := newMemeClient(cfg, logger)
	weatherClient := newWeatherClient(cfg, logger)

	router := server.NewRouter("wellness-hub", func(r chi.Router) {
		// Public surface: credentials and content catalogs.
		if provider != nil {
			httpapi.RegisterAuthRoutes(r, provider, profileService, logger)
		}
		httpapi.RegisterContentRoutes(r, videoClient, memeClient, weatherClient, logger)
		httpapi.RegisterCounselorRoutes(r)

		// Authenticated surface: everything scoped to a user.
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(verifier))

			httpapi.RegisterActivityRoutes(r, activityService)
			httpapi.RegisterProfileRoutes(r, profileService)
			httpapi.RegisterMoodRoutes(r, analyzer, activityService, logger)
			httpapi.RegisterAppointmentRoutes(r, appointmentService)
		})
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := server.Run(ctx, srv, logger); err != nil && !errors.Is(err, http.ErrServerClosed) {
		panic(err)
	}
}

func newRepositories(ctx context.Context, cfg config.Config) (activity.Repository, profile.Repository, appointments.Repository, func(), error) {
	switch cfg.DataStore {
	case config.DataStoreFirestore:
		if cfg.Firestore.EmulatorHost != "" {
			if err := os.Setenv("FIRESTORE_EMULATOR_HOST", cfg.Firestore.EmulatorHost); err != nil {
				return nil, nil, nil, nil, fmt.Errorf("set FIRESTORE_EMULATOR_HOST: %w", err)
			}
		}

		client, err := firestore.NewClient(ctx, cfg.GCPProjectID)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("firestore client: %w", err)
		}

		cleanup := func() {
			_ = client.Close()
		}
		return activity.NewFirestoreRepository(client),
			profile.NewFirestoreRepository(client),
			appointments.NewFirestoreRepository(client),
			cleanup, nil

	case config.DataStoreMemory:
		return activity.NewMemoryRepository(nil, nil),
			profile.NewMemoryRepository(),
			appointments.NewMemoryRepository(),
			func() {}, nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}
}

func newAnalyzer(ctx context.Context, cfg config.Config, logger *slog.Logger) mood.Analyzer {
	if cfg.Mood.GeminiAPIKey == "" {
		logger.Info("no Gemini key configured, using keyword mood analyzer")
		return mood.NewKeywordAnalyzer()
	}

	analyzer, err := mood.NewGeminiAnalyzer(ctx, mood.AnalyzerConfig{
		APIKey: cfg.Mood.GeminiAPIKey,
		Model:  cfg.Mood.Model,
	})
	if err != nil {
		logger.Warn("Gemini analyzer init failed, using keyword mood analyzer", "error", err)
		return mood.NewKeywordAnalyzer()
	}
	return analyzer
}

func newVideoClient(cfg config.Config, logger *slog.Logger) *videos.Client {
	if cfg.Content.YouTubeAPIKey == "" {
		logger.Info("no YouTube key configured, video search disabled")
		return nil
	}
	client, err := videos.NewClient(cfg.Content.YouTubeAPIKey)
	if err != nil {
		logger.Warn("video client init failed", "error", err)
		return nil
	}
	return client
}

func newMemeClient(cfg config.Config, logger *slog.Logger) *memes.Client {
	if cfg.Content.GiphyAPIKey == "" {
		logger.Info("no Giphy key configured, meme search disabled")
		return nil
	}
	client, err := memes.NewClient(cfg.Content.GiphyAPIKey)
	if err != nil {
		logger.Warn("meme client init failed", "error", err)
		return nil
	}
	return client
}

func newWeatherClient(cfg config.Config, logger *slog.Logger) *weather.Client {
	if cfg.Content.OpenWeatherAPIKey == "" {
		logger.Info("no OpenWeather key configured, weather tips disabled")
		return nil
	}
	client, err := weather.NewClient(cfg.Content.OpenWeatherAPIKey)
	if err != nil {
		logger.Warn("weather client init failed", "error", err)
		return nil
	}
	return client
}
