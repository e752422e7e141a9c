package config

import (
	"fmt"
	"strings"

	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/auth"
	"github.com/Kelvinoppong/Student-Wellness-Hub/internal/envconfig"
)

// Config encapsulates the runtime configuration for the wellness hub service.
type Config struct {
	Port         string    `validate:"required"`
	GCPProjectID string
	DataStore    DataStore `validate:"required"`
	Auth         AuthConfig
	Firestore    FirestoreConfig
	Identity     IdentityConfig
	Mood         MoodConfig
	Content      ContentConfig
}

// DataStore enumerates supported persistence backends.
type DataStore string

const (
	// DataStoreMemory stores documents in-memory (useful for local development/testing).
	DataStoreMemory DataStore = "memory"
	// DataStoreFirestore stores documents in Google Cloud Firestore.
	DataStoreFirestore DataStore = "firestore"
)

// AuthConfig stores authentication middleware setup.
type AuthConfig struct {
	Mode    auth.Mode `validate:"required"`
	JWKSURL string
}

// FirestoreConfig tailors Firestore client behavior.
type FirestoreConfig struct {
	EmulatorHost string
}

// IdentityConfig wires the Identity Toolkit REST client.
type IdentityConfig struct {
	APIKey string
}

// MoodConfig wires the mood analyzer.
type MoodConfig struct {
	GeminiAPIKey string
	Model        string
}

// ContentConfig stores the external catalog API keys. Any of these may be
// empty; the matching feature is then disabled rather than failing startup.
type ContentConfig struct {
	YouTubeAPIKey     string
	GiphyAPIKey       string
	OpenWeatherAPIKey string
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	cfg := Config{
		Port:         envconfig.Get("PORT", "8080"),
		GCPProjectID: envconfig.Get("GCP_PROJECT_ID", ""),
		DataStore:    DataStore(strings.ToLower(envconfig.Get("DATASTORE", string(DataStoreMemory)))),
		Auth: AuthConfig{
			Mode:    auth.Mode(strings.ToLower(envconfig.Get("AUTH_MODE", string(auth.ModeNoop)))),
			JWKSURL: envconfig.Get("AUTH_JWKS_URL", ""),
		},
		Firestore: FirestoreConfig{
			EmulatorHost: envconfig.Get("FIRESTORE_EMULATOR_HOST", ""),
		},
		Identity: IdentityConfig{
			APIKey: envconfig.Get("IDENTITY_API_KEY", ""),
		},
		Mood: MoodConfig{
			GeminiAPIKey: envconfig.Get("GEMINI_API_KEY", ""),
			Model:        envconfig.Get("GEMINI_MODEL", ""),
		},
		Content: ContentConfig{
			YouTubeAPIKey:     envconfig.Get("YOUTUBE_API_KEY", ""),
			GiphyAPIKey:       envconfig.Get("GIPHY_API_KEY", ""),
			OpenWeatherAPIKey: envconfig.Get("OPENWEATHER_API_KEY", ""),
		},
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// validate covers the constraints that span fields; the per-field required
// checks live in the struct's validator tags.
func validate(cfg Config) error {
	switch cfg.DataStore {
	case DataStoreMemory:
		// no-op
	case DataStoreFirestore:
		if cfg.GCPProjectID == "" {
			return fmt.Errorf("gcp project id required when datastore=firestore")
		}
	default:
		return fmt.Errorf("unsupported datastore: %s", cfg.DataStore)
	}

	switch cfg.Auth.Mode {
	case auth.ModeFirebase:
		if cfg.GCPProjectID == "" {
			return fmt.Errorf("GCP_PROJECT_ID is required when AUTH_MODE=firebase")
		}
	case auth.ModeNoop:
		// no-op
	default:
		return fmt.Errorf("unsupported auth mode: %s", cfg.Auth.Mode)
	}

	return nil
}
