package appointments

import (
	"time"

	"github.com/google/uuid"
)

type systemClock struct{}

// NewSystemClock returns the wall-clock Clock used outside tests. Booking
// validation compares against it, so tests substitute a fixed one.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type uuidGenerator struct{}

// NewUUIDGenerator produces v7 UUIDs for appointment ids, falling back to v4
// when v7 generation fails.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
