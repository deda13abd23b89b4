package gate

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// memoryStore implements UsageStore with an in-process map.
// Suitable for tests and single-node development setups only.
type memoryStore struct {
	mu   sync.Mutex
	rows map[memoryKey]DayUsage
}

type memoryKey struct {
	userID uuid.UUID
	day    Day
}

// NewMemoryStore returns an in-memory UsageStore.
func NewMemoryStore() UsageStore {
	return &memoryStore{rows: make(map[memoryKey]DayUsage)}
}

func (s *memoryStore) Day(ctx context.Context, userID uuid.UUID, day Day) (DayUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows[memoryKey{userID: userID, day: day}], nil
}

func (s *memoryStore) Increment(ctx context.Context, userID uuid.UUID, day Day, feature FeatureKey) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memoryKey{userID: userID, day: day}
	usage := s.rows[key]

	var count int64
	switch feature {
	case FeatureLogMeal:
		usage.MealsLogged++
		count = usage.MealsLogged
	case FeaturePhotoAnalysis:
		usage.PhotoAnalyses++
		count = usage.PhotoAnalyses
	case FeatureAIMessage:
		usage.AIMessagesSent++
		count = usage.AIMessagesSent
	default:
		return 0, ErrFeatureNotCountable
	}

	s.rows[key] = usage
	return count, nil
}
