package profile

import (
	"context"
	"errors"
)

// Preferences are the user-tunable wellness settings stored on the profile.
type Preferences struct {
	Theme         string   `json:"theme" firestore:"theme"`
	Notifications bool     `json:"notifications" firestore:"notifications"`
	WellnessGoals []string `json:"wellnessGoals" firestore:"wellnessGoals"`
}

// Profile represents the persisted user document. Profiles are created on
// first sign-up or first social sign-in and never deleted by the application.
type Profile struct {
	UID         string      `json:"uid" firestore:"uid"`
	Email       string      `json:"email" firestore:"email"`
	DisplayName string      `json:"displayName,omitempty" firestore:"displayName"`
	Preferences Preferences `json:"preferences" firestore:"preferences"`
}

// DefaultPreferences returns the preferences applied to a freshly created profile.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "light",
		Notifications: true,
		WellnessGoals: []string{},
	}
}

// Repository encapsulates persistence for user profiles.
type Repository interface {
	Get(ctx context.Context, uid string) (*Profile, error)
	// CreateIfAbsent writes the profile only when no document exists for the uid.
	CreateIfAbsent(ctx context.Context, p Profile) error
	// UpdatePreferences merges the preferences into the existing document.
	UpdatePreferences(ctx context.Context, uid string, prefs Preferences) error
}

// ErrNotFound indicates no profile document exists for the uid.
var ErrNotFound = errors.New("user profile not found")

// ErrInvalidInput indicates the provided preferences failed validation.
var ErrInvalidInput = errors.New("invalid input")
