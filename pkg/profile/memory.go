package profile

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore implements Store with an in-process map, for tests and
// single-node development setups.
type memoryStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]Profile
}

// NewMemoryStore returns an in-memory profile store.
func NewMemoryStore() Store {
	return &memoryStore{profiles: make(map[uuid.UUID]Profile)}
}

func (s *memoryStore) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &p, nil
}

func (s *memoryStore) Save(ctx context.Context, p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *p
	now := time.Now().UTC()
	if existing, ok := s.profiles[p.UserID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	stored.UpdatedAt = now
	s.profiles[p.UserID] = stored
	return nil
}
