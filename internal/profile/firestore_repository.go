package profile

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
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

func (r *firestoreRepository) userDoc(uid string) *firestore.DocumentRef {
	return r.client.Collection("users").Doc(uid)
}

func (r *firestoreRepository) Get(ctx context.Context, uid string) (*Profile, error) {
	doc, err := r.userDoc(uid).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	profile.UID = uid
	return &profile, nil
}

func (r *firestoreRepository) CreateIfAbsent(ctx context.Context, p Profile) error {
	docRef := r.userDoc(p.UID)

	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		_, err := tx.Get(docRef)
		if err == nil {
			return nil
		}
		if status.Code(err) != codes.NotFound {
			return err
		}

		// Merge so a stats sub-object written first is preserved.
		return tx.Set(docRef, map[string]any{
			"uid":         p.UID,
			"email":       p.Email,
			"displayName": p.DisplayName,
			"preferences": map[string]any{
				"theme":         p.Preferences.Theme,
				"notifications": p.Preferences.Notifications,
				"wellnessGoals": p.Preferences.WellnessGoals,
			},
		}, firestore.MergeAll)
	})
}

func (r *firestoreRepository) UpdatePreferences(ctx context.Context, uid string, prefs Preferences) error {
	goals := prefs.WellnessGoals
	if goals == nil {
		goals = []string{}
	}

	_, err := r.userDoc(uid).Set(ctx, map[string]any{
		"preferences": map[string]any{
			"theme":         prefs.Theme,
			"notifications": prefs.Notifications,
			"wellnessGoals": goals,
		},
	}, firestore.MergeAll)
	return err
}
