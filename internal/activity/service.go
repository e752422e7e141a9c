package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// UserSource supplies the uid the service acts on behalf of. An empty uid
// means no user is bound; every operation then degrades to a no-op or an
// empty result without touching the repository.
type UserSource interface {
	CurrentUID() string
}

// StaticUser is a UserSource fixed to one uid, used to bind the service to
// the subject of an authenticated request.
type StaticUser string

// CurrentUID returns the fixed uid.
func (u StaticUser) CurrentUID() string { return string(u) }

// Service adapts Repository calls for concurrent callers. Every call returns
// its own result and error pair; there is no shared in-flight state. On
// repository failure the neutral value is returned alongside the error so
// callers can render partial data instead of failing the whole view.
type Service struct {
	repo   Repository
	users  UserSource
	logger *slog.Logger
}

// NewService constructs a Service bound to the provided user source.
func NewService(repo Repository, users UserSource, logger *slog.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	if users == nil {
		return nil, errors.New("user source is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, users: users, logger: logger}, nil
}

// For returns a view of the service bound to a fixed uid.
func (s *Service) For(uid string) *Service {
	return &Service{repo: s.repo, users: StaticUser(uid), logger: s.logger}
}

// LogMood validates and appends a mood log, then bumps the aggregate counters.
func (s *Service) LogMood(ctx context.Context, input MoodLogInput) error {
	uid := s.users.CurrentUID()
	if uid == "" {
		return nil
	}

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.repo.AppendMoodLog(ctx, uid, input); err != nil {
		s.logger.Warn("mood log append failed", "error", err)
		return err
	}

	s.touchStats(ctx, uid, StatsDelta{MoodLogs: 1})
	return nil
}

// MoodHistory lists the most recent mood logs, newest first.
func (s *Service) MoodHistory(ctx context.Context, limit int) ([]MoodLog, error) {
	uid := s.users.CurrentUID()
	if uid == "" {
		return []MoodLog{}, nil
	}

	logs, err := s.repo.ListMoodLogs(ctx, uid, limit)
	if err != nil {
		s.logger.Warn("mood history fetch failed", "error", err)
		return []MoodLog{}, err
	}
	return logs, nil
}

// AddVideoToHistory validates and appends a watch-history entry.
func (s *Service) AddVideoToHistory(ctx context.Context, input VideoHistoryInput) error {
	uid := s.users.CurrentUID()
	if uid == "" {
		return nil
	}

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.repo.AppendVideoHistory(ctx, uid, input); err != nil {
		s.logger.Warn("video history append failed", "error", err)
		return err
	}

	s.touchStats(ctx, uid, StatsDelta{VideosWatched: 1})
	return nil
}

// VideoHistory lists the most recent watch-history entries, newest first.
func (s *Service) VideoHistory(ctx context.Context, limit int) ([]VideoHistoryEntry, error) {
	uid := s.users.CurrentUID()
	if uid == "" {
		return []VideoHistoryEntry{}, nil
	}

	entries, err := s.repo.ListVideoHistory(ctx, uid, limit)
	if err != nil {
		s.logger.Warn("video history fetch failed", "error", err)
		return []VideoHistoryEntry{}, err
	}
	return entries, nil
}

// SaveMeme validates and upserts a saved meme keyed by its id.
func (s *Service) SaveMeme(ctx context.Context, input SaveMemeInput) error {
	uid := s.users.CurrentUID()
	if uid == "" {
		return nil
	}

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	if err := s.repo.SaveMeme(ctx, uid, input); err != nil {
		s.logger.Warn("meme save failed", "error", err)
		return err
	}

	s.touchStats(ctx, uid, StatsDelta{SavedMemes: 1})
	return nil
}

// RemoveMeme soft-deletes a saved meme. Removing an unknown id is not an error.
func (s *Service) RemoveMeme(ctx context.Context, memeID string) error {
	uid := s.users.CurrentUID()
	if uid == "" || memeID == "" {
		return nil
	}

	if err := s.repo.RemoveSavedMeme(ctx, uid, memeID); err != nil {
		s.logger.Warn("meme removal failed", "error", err)
		return err
	}
	return nil
}

// SavedMemes lists active saved memes, newest first.
func (s *Service) SavedMemes(ctx context.Context) ([]SavedMeme, error) {
	uid := s.users.CurrentUID()
	if uid == "" {
		return []SavedMeme{}, nil
	}

	memes, err := s.repo.ListSavedMemes(ctx, uid)
	if err != nil {
		s.logger.Warn("saved memes fetch failed", "error", err)
		return []SavedMeme{}, err
	}
	return memes, nil
}

// Stats returns the aggregate activity counters; all-zero when none exist.
func (s *Service) Stats(ctx context.Context) (UserStats, error) {
	uid := s.users.CurrentUID()
	if uid == "" {
		return UserStats{}, nil
	}

	stats, err := s.repo.GetStats(ctx, uid)
	if err != nil {
		s.logger.Warn("stats fetch failed", "error", err)
		return UserStats{}, err
	}
	return stats, nil
}

// touchStats bumps counters best effort; the aggregate is only as fresh as the
// last successful merge, so a failed bump is logged and not surfaced.
func (s *Service) touchStats(ctx context.Context, uid string, delta StatsDelta) {
	if err := s.repo.TouchStats(ctx, uid, delta); err != nil {
		s.logger.Warn("stats update failed", "error", err, "uid", uid)
	}
}
