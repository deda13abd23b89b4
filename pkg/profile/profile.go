// Package profile holds the user profile record and tier resolution glue for
// the gate package. The profile row itself is owned by the host application;
// subscription/payment flows mutate the tier externally.
package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/vitalabs/vitakit/pkg/gate"
)

var (
	ErrProfileNotFound     = errors.New("profile: not found")
	ErrFailedToGetProfile  = errors.New("profile: failed to get profile")
	ErrFailedToSaveProfile = errors.New("profile: failed to save profile")
)

// Profile represents a user's profile row.
type Profile struct {
	UserID         uuid.UUID
	Tier           gate.Tier
	OnboardingDone bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Store defines the persistence contract for user profiles.
type Store interface {
	// Get retrieves a profile by user ID.
	// Returns ErrProfileNotFound if no profile row exists.
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)

	// Save creates or updates a profile keyed by UserID.
	Save(ctx context.Context, p *Profile) error
}

// TierResolver returns a gate.TierResolver backed by the profile store.
// A missing profile surfaces ErrProfileNotFound: the gate never guesses a
// tier for a user who has not finished onboarding.
func TierResolver(store Store) gate.TierResolver {
	return func(ctx context.Context, userID uuid.UUID) (gate.Tier, error) {
		p, err := store.Get(ctx, userID)
		if err != nil {
			return "", err
		}
		return p.Tier, nil
	}
}

// TierResolverWithDefault resolves a missing profile to the given tier instead
// of failing, for hosts that create profile rows lazily. Other store errors
// still propagate.
func TierResolverWithDefault(store Store, fallback gate.Tier) gate.TierResolver {
	return func(ctx context.Context, userID uuid.UUID) (gate.Tier, error) {
		p, err := store.Get(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrProfileNotFound) {
				return fallback, nil
			}
			return "", err
		}
		return p.Tier, nil
	}
}
