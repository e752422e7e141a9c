package profile

import (
	"context"
	"errors"
	"testing"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(NewMemoryRepository())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestEnsure_CreatesProfileWithDefaultPreferences(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Ensure(context.Background(), "user-1", "a@example.com", "Ada")
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	if p.UID != "user-1" || p.Email != "a@example.com" || p.DisplayName != "Ada" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.Preferences.Theme != "light" {
		t.Errorf("expected light theme by default, got %q", p.Preferences.Theme)
	}
	if !p.Preferences.Notifications {
		t.Error("expected notifications enabled by default")
	}
	if p.Preferences.WellnessGoals == nil || len(p.Preferences.WellnessGoals) != 0 {
		t.Errorf("expected empty wellness goals, got %v", p.Preferences.WellnessGoals)
	}
}

func TestEnsure_DoesNotOverwriteAnExistingProfile(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Ensure(ctx, "user-1", "a@example.com", "Ada"); err != nil {
		t.Fatalf("first Ensure: %v", err)
	}
	if _, err := svc.UpdatePreferences(ctx, "user-1", Preferences{Theme: "dark", Notifications: false}); err != nil {
		t.Fatalf("UpdatePreferences: %v", err)
	}

	p, err := svc.Ensure(ctx, "user-1", "a@example.com", "Ada")
	if err != nil {
		t.Fatalf("second Ensure: %v", err)
	}
	if p.Preferences.Theme != "dark" {
		t.Errorf("expected customized preferences to survive, got theme %q", p.Preferences.Theme)
	}
}

func TestGet_UnknownUserReturnsNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Get(context.Background(), "nobody")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePreferences_RejectsUnknownTheme(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Ensure(ctx, "user-1", "a@example.com", ""); err != nil {
		t.Fatalf("Ensure: %v", err)
	}

	_, err := svc.UpdatePreferences(ctx, "user-1", Preferences{Theme: "sepia"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
