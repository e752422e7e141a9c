package appointments

import (
	"context"
	"sort"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	store map[string][]Appointment // userID -> appointments
}

// NewMemoryRepository returns an in-memory repository intended for local development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{store: make(map[string][]Appointment)}
}

func (r *memoryRepository) Create(_ context.Context, appointment Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[appointment.UserID] = append(r.store[appointment.UserID], appointment)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Appointment, error) {
	r.mu.RLock()
	snapshot := append([]Appointment{}, r.store[userID]...)
	r.mu.RUnlock()

	sort.Slice(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})
	return snapshot, nil
}
