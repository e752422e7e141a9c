package profile

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	store map[string]Profile
}

// NewMemoryRepository returns an in-memory repository intended for local development and tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{store: make(map[string]Profile)}
}

func (r *memoryRepository) Get(_ context.Context, uid string) (*Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.store[uid]
	if !ok {
		return nil, ErrNotFound
	}
	clone := p
	return &clone, nil
}

func (r *memoryRepository) CreateIfAbsent(_ context.Context, p Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[p.UID]; exists {
		return nil
	}
	r.store[p.UID] = p
	return nil
}

func (r *memoryRepository) UpdatePreferences(_ context.Context, uid string, prefs Preferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.store[uid]
	p.UID = uid
	if prefs.WellnessGoals == nil {
		prefs.WellnessGoals = []string{}
	}
	p.Preferences = prefs
	r.store[uid] = p
	return nil
}
