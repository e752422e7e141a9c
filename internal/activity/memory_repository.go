package activity

import (
	"context"
	"sort"
	"strings"
	"sync"
)

type memoryMoodLog struct {
	log MoodLog
	seq uint64
}

type memoryVideoEntry struct {
	entry VideoHistoryEntry
	seq   uint64
}

type memorySavedMeme struct {
	meme SavedMeme
	seq  uint64
}

type memoryRepository struct {
	mu    sync.RWMutex
	clock Clock
	ids   IDGenerator
	seq   uint64

	moodLogs     map[string][]memoryMoodLog
	videoHistory map[string][]memoryVideoEntry
	savedMemes   map[string]map[string]memorySavedMeme
	stats        map[string]UserStats
}

// NewMemoryRepository returns an in-memory repository intended for local development and tests.
func NewMemoryRepository(clock Clock, ids IDGenerator) Repository {
	if clock == nil {
		clock = NewSystemClock()
	}
	if ids == nil {
		ids = NewUUIDGenerator()
	}
	return &memoryRepository{
		clock:        clock,
		ids:          ids,
		moodLogs:     make(map[string][]memoryMoodLog),
		videoHistory: make(map[string][]memoryVideoEntry),
		savedMemes:   make(map[string]map[string]memorySavedMeme),
		stats:        make(map[string]UserStats),
	}
}

func (r *memoryRepository) nextSeq() uint64 {
	r.seq++
	return r.seq
}

func (r *memoryRepository) AppendMoodLog(_ context.Context, userID string, input MoodLogInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activities := append([]string{}, input.Activities...)
	r.moodLogs[userID] = append(r.moodLogs[userID], memoryMoodLog{
		log: MoodLog{
			ID:         r.ids.NewID(),
			Mood:       strings.TrimSpace(input.Mood),
			Intensity:  input.Intensity,
			Activities: activities,
			Notes:      strings.TrimSpace(input.Notes),
			Timestamp:  r.clock.Now().UTC(),
		},
		seq: r.nextSeq(),
	})
	return nil
}

func (r *memoryRepository) ListMoodLogs(_ context.Context, userID string, limit int) ([]MoodLog, error) {
	if limit <= 0 {
		limit = DefaultMoodLogLimit
	}

	r.mu.RLock()
	snapshot := append([]memoryMoodLog{}, r.moodLogs[userID]...)
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].log.Timestamp.Equal(snapshot[j].log.Timestamp) {
			return snapshot[i].log.Timestamp.After(snapshot[j].log.Timestamp)
		}
		return snapshot[i].seq > snapshot[j].seq
	})
	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}

	logs := make([]MoodLog, 0, len(snapshot))
	for _, item := range snapshot {
		logs = append(logs, item.log)
	}
	return logs, nil
}

func (r *memoryRepository) AppendVideoHistory(_ context.Context, userID string, input VideoHistoryInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.videoHistory[userID] = append(r.videoHistory[userID], memoryVideoEntry{
		entry: VideoHistoryEntry{
			ID:        r.ids.NewID(),
			VideoID:   input.VideoID,
			Title:     input.Title,
			Thumbnail: input.Thumbnail,
			Category:  input.Category,
			WatchedAt: r.clock.Now().UTC(),
		},
		seq: r.nextSeq(),
	})
	return nil
}

func (r *memoryRepository) ListVideoHistory(_ context.Context, userID string, limit int) ([]VideoHistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultVideoHistoryLimit
	}

	r.mu.RLock()
	snapshot := append([]memoryVideoEntry{}, r.videoHistory[userID]...)
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].entry.WatchedAt.Equal(snapshot[j].entry.WatchedAt) {
			return snapshot[i].entry.WatchedAt.After(snapshot[j].entry.WatchedAt)
		}
		return snapshot[i].seq > snapshot[j].seq
	})
	if len(snapshot) > limit {
		snapshot = snapshot[:limit]
	}

	entries := make([]VideoHistoryEntry, 0, len(snapshot))
	for _, item := range snapshot {
		entries = append(entries, item.entry)
	}
	return entries, nil
}

func (r *memoryRepository) SaveMeme(_ context.Context, userID string, input SaveMemeInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userStore, ok := r.savedMemes[userID]
	if !ok {
		userStore = make(map[string]memorySavedMeme)
		r.savedMemes[userID] = userStore
	}

	// Upsert keyed by meme id; a re-save replaces, clearing a prior soft delete.
	userStore[input.ID] = memorySavedMeme{
		meme: SavedMeme{
			ID:      input.ID,
			URL:     input.URL,
			Title:   input.Title,
			SavedAt: r.clock.Now().UTC(),
		},
		seq: r.nextSeq(),
	}
	return nil
}

func (r *memoryRepository) RemoveSavedMeme(_ context.Context, userID, memeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	userStore, ok := r.savedMemes[userID]
	if !ok {
		userStore = make(map[string]memorySavedMeme)
		r.savedMemes[userID] = userStore
	}

	now := r.clock.Now().UTC()
	item := userStore[memeID]
	item.meme.ID = memeID
	item.meme.Deleted = true
	item.meme.DeletedAt = &now
	if item.seq == 0 {
		item.seq = r.nextSeq()
	}
	userStore[memeID] = item
	return nil
}

func (r *memoryRepository) ListSavedMemes(_ context.Context, userID string) ([]SavedMeme, error) {
	r.mu.RLock()
	snapshot := make([]memorySavedMeme, 0)
	for _, item := range r.savedMemes[userID] {
		if item.meme.Deleted {
			continue
		}
		snapshot = append(snapshot, item)
	}
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		if !snapshot[i].meme.SavedAt.Equal(snapshot[j].meme.SavedAt) {
			return snapshot[i].meme.SavedAt.After(snapshot[j].meme.SavedAt)
		}
		return snapshot[i].seq > snapshot[j].seq
	})

	memes := make([]SavedMeme, 0, len(snapshot))
	for _, item := range snapshot {
		memes = append(memes, item.meme)
	}
	return memes, nil
}

func (r *memoryRepository) GetStats(_ context.Context, userID string) (UserStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stats[userID], nil
}

func (r *memoryRepository) TouchStats(_ context.Context, userID string, delta StatsDelta) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.stats[userID]
	current.TotalMoodLogs += delta.MoodLogs
	current.TotalVideosWatched += delta.VideosWatched
	current.TotalSavedMemes += delta.SavedMemes
	now := r.clock.Now().UTC()
	current.LastActive = &now
	r.stats[userID] = current
	return nil
}
