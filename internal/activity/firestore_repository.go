package activity

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository instantiates a Firestore-backed repository.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

const (
	moodLogsCollection     = "moodLogs"
	videoHistoryCollection = "videoHistory"
	savedMemesCollection   = "savedMemes"
)

func (r *firestoreRepository) userDoc(userID string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(userID)
}

func (r *firestoreRepository) AppendMoodLog(ctx context.Context, userID string, input MoodLogInput) error {
	activities := input.Activities
	if activities == nil {
		activities = []string{}
	}

	_, _, err := r.userDoc(userID).Collection(moodLogsCollection).Add(ctx, map[string]any{
		"mood":       strings.TrimSpace(input.Mood),
		"intensity":  input.Intensity,
		"activities": activities,
		"notes":      strings.TrimSpace(input.Notes),
		"timestamp":  firestore.ServerTimestamp,
	})
	if err != nil {
		return repositoryError("append mood log", err)
	}
	return nil
}

func (r *firestoreRepository) ListMoodLogs(ctx context.Context, userID string, limit int) ([]MoodLog, error) {
	if limit <= 0 {
		limit = DefaultMoodLogLimit
	}

	iter := r.userDoc(userID).Collection(moodLogsCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	logs := make([]MoodLog, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, repositoryError("list mood logs", err)
		}

		var payload struct {
			Mood       string    `firestore:"mood"`
			Intensity  int       `firestore:"intensity"`
			Activities []string  `firestore:"activities"`
			Notes      string    `firestore:"notes"`
			Timestamp  time.Time `firestore:"timestamp"`
		}
		if err := doc.DataTo(&payload); err != nil {
			return nil, repositoryError("decode mood log", err)
		}

		activities := payload.Activities
		if activities == nil {
			activities = []string{}
		}

		logs = append(logs, MoodLog{
			ID:         doc.Ref.ID,
			Mood:       payload.Mood,
			Intensity:  payload.Intensity,
			Activities: activities,
			Notes:      payload.Notes,
			Timestamp:  payload.Timestamp,
		})
	}

	return logs, nil
}

func (r *firestoreRepository) AppendVideoHistory(ctx context.Context, userID string, input VideoHistoryInput) error {
	_, _, err := r.userDoc(userID).Collection(videoHistoryCollection).Add(ctx, map[string]any{
		"videoId":   input.VideoID,
		"title":     input.Title,
		"thumbnail": input.Thumbnail,
		"category":  input.Category,
		"watchedAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return repositoryError("append video history", err)
	}
	return nil
}

func (r *firestoreRepository) ListVideoHistory(ctx context.Context, userID string, limit int) ([]VideoHistoryEntry, error) {
	if limit <= 0 {
		limit = DefaultVideoHistoryLimit
	}

	iter := r.userDoc(userID).Collection(videoHistoryCollection).
		OrderBy("watchedAt", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	entries := make([]VideoHistoryEntry, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, repositoryError("list video history", err)
		}

		var payload struct {
			VideoID   string    `firestore:"videoId"`
			Title     string    `firestore:"title"`
			Thumbnail string    `firestore:"thumbnail"`
			Category  string    `firestore:"category"`
			WatchedAt time.Time `firestore:"watchedAt"`
		}
		if err := doc.DataTo(&payload); err != nil {
			return nil, repositoryError("decode video history entry", err)
		}

		entries = append(entries, VideoHistoryEntry{
			ID:        doc.Ref.ID,
			VideoID:   payload.VideoID,
			Title:     payload.Title,
			Thumbnail: payload.Thumbnail,
			Category:  payload.Category,
			WatchedAt: payload.WatchedAt,
		})
	}

	return entries, nil
}

func (r *firestoreRepository) SaveMeme(ctx context.Context, userID string, input SaveMemeInput) error {
	// Full set keyed by the meme id: re-saving replaces the document, which
	// also clears a prior soft delete.
	_, err := r.userDoc(userID).Collection(savedMemesCollection).Doc(input.ID).Set(ctx, map[string]any{
		"id":      input.ID,
		"url":     input.URL,
		"title":   input.Title,
		"savedAt": firestore.ServerTimestamp,
		"deleted": false,
	})
	if err != nil {
		return repositoryError("save meme", err)
	}
	return nil
}

func (r *firestoreRepository) RemoveSavedMeme(ctx context.Context, userID, memeID string) error {
	// Merge semantics create-or-update, so removing an unknown id is not an error.
	_, err := r.userDoc(userID).Collection(savedMemesCollection).Doc(memeID).Set(ctx, map[string]any{
		"deleted":   true,
		"deletedAt": firestore.ServerTimestamp,
	}, firestore.MergeAll)
	if err != nil {
		return repositoryError("remove saved meme", err)
	}
	return nil
}

func (r *firestoreRepository) ListSavedMemes(ctx context.Context, userID string) ([]SavedMeme, error) {
	iter := r.userDoc(userID).Collection(savedMemesCollection).
		Where("deleted", "==", false).
		OrderBy("savedAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	memes := make([]SavedMeme, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, repositoryError("list saved memes", err)
		}

		var payload struct {
			URL       string    `firestore:"url"`
			Title     string    `firestore:"title"`
			SavedAt   time.Time `firestore:"savedAt"`
			Deleted   bool      `firestore:"deleted"`
			DeletedAt time.Time `firestore:"deletedAt"`
		}
		if err := doc.DataTo(&payload); err != nil {
			return nil, repositoryError("decode saved meme", err)
		}

		memes = append(memes, SavedMeme{
			ID:      doc.Ref.ID,
			URL:     payload.URL,
			Title:   payload.Title,
			SavedAt: payload.SavedAt,
		})
	}

	return memes, nil
}

func (r *firestoreRepository) GetStats(ctx context.Context, userID string) (UserStats, error) {
	doc, err := r.userDoc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return UserStats{}, nil
	}
	if err != nil {
		return UserStats{}, repositoryError("get stats", err)
	}

	var payload struct {
		Stats UserStats `firestore:"stats"`
	}
	if err := doc.DataTo(&payload); err != nil {
		return UserStats{}, repositoryError("decode stats", err)
	}

	return payload.Stats, nil
}

func (r *firestoreRepository) TouchStats(ctx context.Context, userID string, delta StatsDelta) error {
	docRef := r.userDoc(userID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		current := UserStats{}

		doc, err := tx.Get(docRef)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err == nil {
			var payload struct {
				Stats UserStats `firestore:"stats"`
			}
			if err := doc.DataTo(&payload); err != nil {
				return err
			}
			current = payload.Stats
		}

		return tx.Set(docRef, map[string]any{
			"stats": map[string]any{
				"totalMoodLogs":      current.TotalMoodLogs + delta.MoodLogs,
				"totalVideosWatched": current.TotalVideosWatched + delta.VideosWatched,
				"totalSavedMemes":    current.TotalSavedMemes + delta.SavedMemes,
				"lastActive":         firestore.ServerTimestamp,
			},
		}, firestore.MergeAll)
	})
	if err != nil {
		return repositoryError("touch stats", err)
	}
	return nil
}
