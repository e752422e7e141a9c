package appointments

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const appointmentsCollection = "appointments"

type firestoreRepository struct {
	client *firestore.Client
}

// NewFirestoreRepository instantiates a Firestore-backed repository.
func NewFirestoreRepository(client *firestore.Client) Repository {
	return &firestoreRepository{client: client}
}

func (r *firestoreRepository) Create(ctx context.Context, appointment Appointment) error {
	_, err := r.client.Collection(appointmentsCollection).Doc(appointment.ID).Create(ctx, map[string]any{
		"userId":          appointment.UserID,
		"userEmail":       appointment.UserEmail,
		"userName":        appointment.UserName,
		"counselorId":     appointment.CounselorID,
		"counselorName":   appointment.CounselorName,
		"appointmentType": appointment.Type,
		"date":            appointment.Date,
		"time":            appointment.Time,
		"reason":          appointment.Reason,
		"status":          appointment.Status,
		"createdAt":       appointment.CreatedAt,
	})
	return err
}

func (r *firestoreRepository) ListByUser(ctx context.Context, userID string) ([]Appointment, error) {
	iter := r.client.Collection(appointmentsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	appointments := make([]Appointment, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var payload struct {
			UserID        string    `firestore:"userId"`
			UserEmail     string    `firestore:"userEmail"`
			UserName      string    `firestore:"userName"`
			CounselorID   int       `firestore:"counselorId"`
			CounselorName string    `firestore:"counselorName"`
			Type          string    `firestore:"appointmentType"`
			Date          string    `firestore:"date"`
			Time          string    `firestore:"time"`
			Reason        string    `firestore:"reason"`
			Status        string    `firestore:"status"`
			CreatedAt     time.Time `firestore:"createdAt"`
		}
		if err := doc.DataTo(&payload); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}

		appointments = append(appointments, Appointment{
			ID:            doc.Ref.ID,
			UserID:        payload.UserID,
			UserEmail:     payload.UserEmail,
			UserName:      payload.UserName,
			CounselorID:   payload.CounselorID,
			CounselorName: payload.CounselorName,
			Type:          payload.Type,
			Date:          payload.Date,
			Time:          payload.Time,
			Reason:        payload.Reason,
			Status:        payload.Status,
			CreatedAt:     payload.CreatedAt,
		})
	}

	return appointments, nil
}
