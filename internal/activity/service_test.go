package activity

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	appendMoodLogFn      func(context.Context, string, MoodLogInput) error
	listMoodLogsFn       func(context.Context, string, int) ([]MoodLog, error)
	appendVideoHistoryFn func(context.Context, string, VideoHistoryInput) error
	listVideoHistoryFn   func(context.Context, string, int) ([]VideoHistoryEntry, error)
	saveMemeFn           func(context.Context, string, SaveMemeInput) error
	removeSavedMemeFn    func(context.Context, string, string) error
	listSavedMemesFn     func(context.Context, string) ([]SavedMeme, error)
	getStatsFn           func(context.Context, string) (UserStats, error)
	touchStatsFn         func(context.Context, string, StatsDelta) error

	calls int
}

func (f *fakeRepo) AppendMoodLog(ctx context.Context, userID string, input MoodLogInput) error {
	f.calls++
	if f.appendMoodLogFn != nil {
		return f.appendMoodLogFn(ctx, userID, input)
	}
	return nil
}

func (f *fakeRepo) ListMoodLogs(ctx context.Context, userID string, limit int) ([]MoodLog, error) {
	f.calls++
	if f.listMoodLogsFn != nil {
		return f.listMoodLogsFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeRepo) AppendVideoHistory(ctx context.Context, userID string, input VideoHistoryInput) error {
	f.calls++
	if f.appendVideoHistoryFn != nil {
		return f.appendVideoHistoryFn(ctx, userID, input)
	}
	return nil
}

func (f *fakeRepo) ListVideoHistory(ctx context.Context, userID string, limit int) ([]VideoHistoryEntry, error) {
	f.calls++
	if f.listVideoHistoryFn != nil {
		return f.listVideoHistoryFn(ctx, userID, limit)
	}
	return nil, nil
}

func (f *fakeRepo) SaveMeme(ctx context.Context, userID string, input SaveMemeInput) error {
	f.calls++
	if f.saveMemeFn != nil {
		return f.saveMemeFn(ctx, userID, input)
	}
	return nil
}

func (f *fakeRepo) RemoveSavedMeme(ctx context.Context, userID, memeID string) error {
	f.calls++
	if f.removeSavedMemeFn != nil {
		return f.removeSavedMemeFn(ctx, userID, memeID)
	}
	return nil
}

func (f *fakeRepo) ListSavedMemes(ctx context.Context, userID string) ([]SavedMeme, error) {
	f.calls++
	if f.listSavedMemesFn != nil {
		return f.listSavedMemesFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeRepo) GetStats(ctx context.Context, userID string) (UserStats, error) {
	f.calls++
	if f.getStatsFn != nil {
		return f.getStatsFn(ctx, userID)
	}
	return UserStats{}, nil
}

func (f *fakeRepo) TouchStats(ctx context.Context, userID string, delta StatsDelta) error {
	if f.touchStatsFn != nil {
		return f.touchStatsFn(ctx, userID, delta)
	}
	return nil
}

func newTestService(t *testing.T, repo Repository, uid string) *Service {
	t.Helper()
	svc, err := NewService(repo, StaticUser(uid), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceWithoutUser_OperationsAreNeutralNoOps(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, "")
	ctx := context.Background()

	if err := svc.LogMood(ctx, MoodLogInput{Mood: "Happy", Intensity: 7}); err != nil {
		t.Errorf("LogMood: expected nil error, got %v", err)
	}
	logs, err := svc.MoodHistory(ctx, 10)
	if err != nil || len(logs) != 0 {
		t.Errorf("MoodHistory: expected empty result, got %v logs, err %v", len(logs), err)
	}
	if err := svc.SaveMeme(ctx, SaveMemeInput{ID: "m1", URL: "https://example.com/m.gif"}); err != nil {
		t.Errorf("SaveMeme: expected nil error, got %v", err)
	}
	memes, err := svc.SavedMemes(ctx)
	if err != nil || len(memes) != 0 {
		t.Errorf("SavedMemes: expected empty result, got %v memes, err %v", len(memes), err)
	}
	stats, err := svc.Stats(ctx)
	if err != nil || stats.TotalMoodLogs != 0 {
		t.Errorf("Stats: expected zero stats, got %+v, err %v", stats, err)
	}

	if repo.calls != 0 {
		t.Errorf("expected no repository calls without a user, got %d", repo.calls)
	}
}

func TestLogMood_RejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input MoodLogInput
	}{
		{name: "missing mood", input: MoodLogInput{Intensity: 5}},
		{name: "intensity too low", input: MoodLogInput{Mood: "Happy", Intensity: 0}},
		{name: "intensity too high", input: MoodLogInput{Mood: "Happy", Intensity: 11}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRepo{}
			svc := newTestService(t, repo, "user-1")

			err := svc.LogMood(context.Background(), tc.input)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if repo.calls != 0 {
				t.Errorf("expected no repository call on invalid input, got %d", repo.calls)
			}
		})
	}
}

func TestMoodHistory_FailureDegradesToEmptyWithError(t *testing.T) {
	wantErr := repositoryError("list mood logs", errors.New("firestore down"))
	repo := &fakeRepo{
		listMoodLogsFn: func(context.Context, string, int) ([]MoodLog, error) {
			return nil, wantErr
		},
	}
	svc := newTestService(t, repo, "user-1")

	logs, err := svc.MoodHistory(context.Background(), 10)
	if !errors.Is(err, ErrRepository) {
		t.Fatalf("expected ErrRepository, got %v", err)
	}
	if logs == nil || len(logs) != 0 {
		t.Errorf("expected non-nil empty slice alongside error, got %v", logs)
	}
}

func TestLogMood_BumpsStatsAfterAppend(t *testing.T) {
	var touched []StatsDelta
	repo := &fakeRepo{
		touchStatsFn: func(_ context.Context, _ string, delta StatsDelta) error {
			touched = append(touched, delta)
			return nil
		},
	}
	svc := newTestService(t, repo, "user-1")

	if err := svc.LogMood(context.Background(), MoodLogInput{Mood: "Happy", Intensity: 7}); err != nil {
		t.Fatalf("LogMood: %v", err)
	}

	if len(touched) != 1 || touched[0].MoodLogs != 1 {
		t.Fatalf("expected one mood-log counter bump, got %+v", touched)
	}
}

func TestLogMood_StatsFailureDoesNotFailTheWrite(t *testing.T) {
	repo := &fakeRepo{
		touchStatsFn: func(context.Context, string, StatsDelta) error {
			return errors.New("transaction aborted")
		},
	}
	svc := newTestService(t, repo, "user-1")

	if err := svc.LogMood(context.Background(), MoodLogInput{Mood: "Happy", Intensity: 7}); err != nil {
		t.Fatalf("expected nil error when only the stats bump fails, got %v", err)
	}
}

func TestLogMood_AppendFailureSkipsStats(t *testing.T) {
	statsTouched := false
	repo := &fakeRepo{
		appendMoodLogFn: func(context.Context, string, MoodLogInput) error {
			return repositoryError("append mood log", errors.New("unavailable"))
		},
		touchStatsFn: func(context.Context, string, StatsDelta) error {
			statsTouched = true
			return nil
		},
	}
	svc := newTestService(t, repo, "user-1")

	err := svc.LogMood(context.Background(), MoodLogInput{Mood: "Happy", Intensity: 7})
	if !errors.Is(err, ErrRepository) {
		t.Fatalf("expected ErrRepository, got %v", err)
	}
	if statsTouched {
		t.Error("stats must not be bumped when the append fails")
	}
}

func TestSaveMeme_CounterCountsSaveEventsNotActiveMemes(t *testing.T) {
	// The saved-memes counter is an append-only tally of save events: a
	// re-save of the same id bumps it again and a removal never decrements,
	// so it may exceed the size of the active list.
	repo, clock := newTestRepo()
	svc := newTestService(t, repo, "user-1")
	ctx := context.Background()

	input := SaveMemeInput{ID: "meme-1", URL: "https://example.com/a.gif"}
	if err := svc.SaveMeme(ctx, input); err != nil {
		t.Fatalf("first save: %v", err)
	}
	clock.advance(1)
	if err := svc.SaveMeme(ctx, input); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	if err := svc.RemoveMeme(ctx, "meme-1"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalSavedMemes != 2 {
		t.Errorf("expected 2 save events counted, got %d", stats.TotalSavedMemes)
	}

	memes, err := svc.SavedMemes(ctx)
	if err != nil {
		t.Fatalf("SavedMemes: %v", err)
	}
	if len(memes) != 0 {
		t.Errorf("expected no active memes, got %d", len(memes))
	}
}

func TestRemoveMeme_EmptyIDIsANoOp(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(t, repo, "user-1")

	if err := svc.RemoveMeme(context.Background(), ""); err != nil {
		t.Fatalf("expected nil error for empty id, got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("expected no repository call for empty id, got %d", repo.calls)
	}
}

func TestFor_BindsAFixedUser(t *testing.T) {
	var gotUID string
	repo := &fakeRepo{
		listSavedMemesFn: func(_ context.Context, userID string) ([]SavedMeme, error) {
			gotUID = userID
			return []SavedMeme{}, nil
		},
	}
	svc := newTestService(t, repo, "")

	if _, err := svc.For("user-42").SavedMemes(context.Background()); err != nil {
		t.Fatalf("SavedMemes: %v", err)
	}
	if gotUID != "user-42" {
		t.Errorf("expected repo call for user-42, got %q", gotUID)
	}
}
