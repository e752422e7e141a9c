package activity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// MoodLog is one append-only mood analysis event. Logs are never mutated or
// deleted once written.
type MoodLog struct {
	ID         string    `json:"id"`
	Mood       string    `json:"mood"`
	Intensity  int       `json:"intensity"`
	Activities []string  `json:"activities"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// VideoHistoryEntry records one video-open action. Duplicates are allowed;
// repeated views produce repeated entries.
type VideoHistoryEntry struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Category  string    `json:"category"`
	WatchedAt time.Time `json:"watchedAt"`
}

// SavedMeme is a meme the user pinned. Removal is a soft delete: the document
// stays in place with deleted=true and a deletedAt stamp.
type SavedMeme struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Title     string     `json:"title"`
	SavedAt   time.Time  `json:"savedAt"`
	Deleted   bool       `json:"-"`
	DeletedAt *time.Time `json:"-"`
}

// UserStats is the aggregate stored as a sub-object on the user document.
// A missing document or sub-object is equivalent to all-zero counts.
type UserStats struct {
	TotalMoodLogs      int        `json:"totalMoodLogs" firestore:"totalMoodLogs"`
	TotalVideosWatched int        `json:"totalVideosWatched" firestore:"totalVideosWatched"`
	TotalSavedMemes    int        `json:"totalSavedMemes" firestore:"totalSavedMemes"`
	LastActive         *time.Time `json:"lastActive" firestore:"lastActive"`
}

// StatsDelta describes the counter bumps applied after an activity write.
type StatsDelta struct {
	MoodLogs      int
	VideosWatched int
	SavedMemes    int
}

// MoodLogInput captures the data required to append a mood log. The timestamp
// is assigned server-side at write time.
type MoodLogInput struct {
	Mood       string   `json:"mood"`
	Intensity  int      `json:"intensity"`
	Activities []string `json:"activities"`
	Notes      string   `json:"notes"`
}

// Validate ensures the input fields meet the domain constraints.
func (i MoodLogInput) Validate() error {
	var problems []string

	if strings.TrimSpace(i.Mood) == "" {
		problems = append(problems, "mood is required")
	}
	if i.Intensity < 1 || i.Intensity > 10 {
		problems = append(problems, "intensity must be between 1 and 10")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// VideoHistoryInput captures the data required to append a watch-history entry.
type VideoHistoryInput struct {
	VideoID   string `json:"videoId"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
}

// Validate ensures the input fields meet the domain constraints.
func (i VideoHistoryInput) Validate() error {
	if strings.TrimSpace(i.VideoID) == "" {
		return errors.New("videoId is required")
	}
	return nil
}

// SaveMemeInput captures the data required to upsert a saved meme.
type SaveMemeInput struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Validate ensures the input fields meet the domain constraints.
func (i SaveMemeInput) Validate() error {
	var problems []string

	if strings.TrimSpace(i.ID) == "" {
		problems = append(problems, "id is required")
	}
	if strings.TrimSpace(i.URL) == "" {
		problems = append(problems, "url is required")
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

// Default list caps applied when a caller passes a non-positive limit.
const (
	DefaultMoodLogLimit      = 10
	DefaultVideoHistoryLimit = 20
)

// Repository encapsulates persistence for the per-user activity namespaces.
// Implementations assign timestamps at write time and never leak the
// underlying store's error shapes: transport and storage failures surface as
// ErrRepository.
type Repository interface {
	AppendMoodLog(ctx context.Context, userID string, input MoodLogInput) error
	ListMoodLogs(ctx context.Context, userID string, limit int) ([]MoodLog, error)
	AppendVideoHistory(ctx context.Context, userID string, input VideoHistoryInput) error
	ListVideoHistory(ctx context.Context, userID string, limit int) ([]VideoHistoryEntry, error)
	SaveMeme(ctx context.Context, userID string, input SaveMemeInput) error
	RemoveSavedMeme(ctx context.Context, userID, memeID string) error
	ListSavedMemes(ctx context.Context, userID string) ([]SavedMeme, error)
	GetStats(ctx context.Context, userID string) (UserStats, error)
	TouchStats(ctx context.Context, userID string, delta StatsDelta) error
}

// ErrRepository indicates a remote read/write failed. The wrapped message is
// human-readable; callers recover by rendering empty or last-known data.
var ErrRepository = errors.New("activity repository operation failed")

// ErrInvalidInput indicates the provided data failed validation.
var ErrInvalidInput = errors.New("invalid input")

func repositoryError(operation string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRepository, operation, err)
}

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for new entries.
type IDGenerator interface {
	NewID() string
}
