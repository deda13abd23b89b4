package profile

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalabs/vitakit/pkg/gate"
	"github.com/vitalabs/vitakit/pkg/pg"
)

// PGStore implements Store over the user_profiles table.
// Only the columns this module reads are listed; the host owns the rest of
// the row (goals, body metrics, preferences).
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a PostgreSQL-backed profile store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func (s *PGStore) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p := Profile{UserID: userID}
	var tier string
	err := s.pool.QueryRow(ctx,
		`SELECT subscription_tier, onboarding_done, created_at, updated_at
		   FROM user_profiles
		  WHERE user_id = $1`,
		userID,
	).Scan(&tier, &p.OnboardingDone, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Join(ErrFailedToGetProfile, err)
	}
	p.Tier = gate.Tier(tier)
	return &p, nil
}

func (s *PGStore) Save(ctx context.Context, p *Profile) error {
	now := time.Now().UTC()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, subscription_tier, onboarding_done, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $4)
		 ON CONFLICT (user_id)
		 DO UPDATE SET subscription_tier = $2, onboarding_done = $3, updated_at = $4`,
		p.UserID, string(p.Tier), p.OnboardingDone, now)
	if err != nil {
		return errors.Join(ErrFailedToSaveProfile, err)
	}
	return nil
}
