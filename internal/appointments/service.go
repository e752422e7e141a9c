package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock delivers the current time; extracted for deterministic testing.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for new appointments.
type IDGenerator interface {
	NewID() string
}

// Service orchestrates appointment booking.
type Service struct {
	repo  Repository
	clock Clock
	ids   IDGenerator
}

// NewService constructs a Service instance with the provided collaborators.
func NewService(repo Repository, clock Clock, ids IDGenerator) (*Service, error) {
	if repo == nil {
		return nil, errors.New("repo is required")
	}
	if clock == nil {
		return nil, errors.New("clock is required")
	}
	if ids == nil {
		return nil, errors.New("id generator is required")
	}
	return &Service{repo: repo, clock: clock, ids: ids}, nil
}

// Book validates the input and persists a pending appointment.
func (s *Service) Book(ctx context.Context, input BookInput) (Appointment, error) {
	now := s.clock.Now().UTC()

	if err := input.Validate(now); err != nil {
		return Appointment{}, fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	counselor := counselorByID(input.CounselorID)

	appointment := Appointment{
		ID:            s.ids.NewID(),
		UserID:        input.UserID,
		UserEmail:     strings.TrimSpace(input.UserEmail),
		UserName:      strings.TrimSpace(input.UserName),
		CounselorID:   counselor.ID,
		CounselorName: counselor.Name,
		Type:          input.Type,
		Date:          input.Date,
		Time:          input.Time,
		Reason:        strings.TrimSpace(input.Reason),
		Status:        StatusPending,
		CreatedAt:     now,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return Appointment{}, err
	}

	return appointment, nil
}

// ListForUser returns the user's appointments, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Appointment, error) {
	if userID == "" {
		return []Appointment{}, nil
	}
	return s.repo.ListByUser(ctx, userID)
}
