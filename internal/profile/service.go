package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Service orchestrates profile creation and preference updates.
type Service struct {
	repo Repository
}

// NewService constructs a Service instance with the provided repository.
func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	return &Service{repo: repo}, nil
}

// Ensure creates the profile with default preferences when none exists yet and
// returns the stored profile. Called after every successful sign-up or sign-in.
func (s *Service) Ensure(ctx context.Context, uid, email, displayName string) (*Profile, error) {
	if uid == "" {
		return nil, errors.New("uid is required")
	}

	err := s.repo.CreateIfAbsent(ctx, Profile{
		UID:         uid,
		Email:       strings.TrimSpace(email),
		DisplayName: strings.TrimSpace(displayName),
		Preferences: DefaultPreferences(),
	})
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	return s.repo.Get(ctx, uid)
}

// Get retrieves the profile for the uid.
func (s *Service) Get(ctx context.Context, uid string) (*Profile, error) {
	if uid == "" {
		return nil, ErrNotFound
	}
	return s.repo.Get(ctx, uid)
}

// UpdatePreferences merges new preferences into the profile document.
func (s *Service) UpdatePreferences(ctx context.Context, uid string, prefs Preferences) (*Profile, error) {
	if uid == "" {
		return nil, ErrNotFound
	}

	if prefs.Theme != "light" && prefs.Theme != "dark" {
		return nil, fmt.Errorf("%w: theme must be light or dark", ErrInvalidInput)
	}

	if err := s.repo.UpdatePreferences(ctx, uid, prefs); err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	return s.repo.Get(ctx, uid)
}
