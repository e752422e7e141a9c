package activity

import (
	"time"

	"github.com/google/uuid"
)

type systemClock struct{}

// NewSystemClock returns the wall-clock Clock used outside tests.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

type uuidGenerator struct{}

// NewUUIDGenerator produces time-ordered v7 UUIDs for activity entries,
// falling back to v4 when v7 generation fails.
func NewUUIDGenerator() IDGenerator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
