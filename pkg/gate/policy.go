package gate

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
)

// PolicySource defines how feature policies are loaded into the gate service.
type PolicySource interface {
	Load(ctx context.Context) (map[FeatureKey]Policy, error)
}

// DefaultPolicies returns the compiled-in policy table of the application.
// advanced_workouts carries no counter: it is a premium-only boolean gate.
func DefaultPolicies() map[FeatureKey]Policy {
	return map[FeatureKey]Policy{
		FeatureLogMeal:          {Free: 5, Premium: Unlimited},
		FeaturePhotoAnalysis:    {Free: 3, Premium: Unlimited},
		FeatureAIMessage:        {Free: 10, Premium: Unlimited},
		FeatureAdvancedWorkouts: {Free: 0, Premium: Unlimited},
	}
}

// inMemSource implements PolicySource over a static policy map.
type inMemSource struct {
	mu       sync.RWMutex
	policies map[FeatureKey]Policy
}

// NewInMemSource returns an in-memory PolicySource with a copy of the given table.
func NewInMemSource(policies map[FeatureKey]Policy) PolicySource {
	return &inMemSource{policies: maps.Clone(policies)}
}

// Load returns a copy of the policy table.
// The returned map is not protected by the mutex after return.
func (s *inMemSource) Load(ctx context.Context) (map[FeatureKey]Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.policies), nil
}

// validatePolicies checks the policy table for configuration defects.
func validatePolicies(policies map[FeatureKey]Policy) error {
	for feature, policy := range policies {
		for tier, limit := range map[Tier]int64{TierFree: policy.Free, TierPremium: policy.Premium} {
			if limit < Unlimited {
				return errors.Join(ErrInvalidPolicy,
					fmt.Errorf("feature %s has negative %s cap: %d", feature, tier, limit))
			}
			// A finite non-zero cap on a counterless feature can never be enforced.
			if !feature.Countable() && limit > 0 {
				return errors.Join(ErrInvalidPolicy,
					fmt.Errorf("feature %s has no counter but a finite %s cap: %d", feature, tier, limit))
			}
		}
	}
	return nil
}
