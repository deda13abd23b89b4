package usage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vitalabs/vitakit/pkg/gate"
	"github.com/vitalabs/vitakit/pkg/pg"
)

// PGStore implements gate.UsageStore over the usage_counters table.
//
// Expected row shape (schema is managed externally):
//
//	usage_counters (
//	    user_id          uuid      not null,
//	    day              date      not null,
//	    meals_logged     bigint    not null default 0,
//	    photo_analyses   bigint    not null default 0,
//	    ai_messages_sent bigint    not null default 0,
//	    created_at       timestamptz not null default now(),
//	    updated_at       timestamptz not null default now(),
//	    unique (user_id, day)
//	)
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore returns a PostgreSQL-backed usage store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Day fetches the counter row for (userID, day). A missing row reads as zero
// usage, per the lazy-creation lifecycle of the table.
func (s *PGStore) Day(ctx context.Context, userID uuid.UUID, day gate.Day) (gate.DayUsage, error) {
	var u gate.DayUsage
	err := s.pool.QueryRow(ctx,
		`SELECT meals_logged, photo_analyses, ai_messages_sent
		   FROM usage_counters
		  WHERE user_id = $1 AND day = $2`,
		userID, string(day),
	).Scan(&u.MealsLogged, &u.PhotoAnalyses, &u.AIMessagesSent)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return gate.DayUsage{}, nil
		}
		return gate.DayUsage{}, err
	}
	return u, nil
}

// Increment upserts the day's row and bumps the feature's counter in a single
// statement, returning the new value. The conflict target is the (user_id,
// day) unique pair, so concurrent increments serialize at the row level.
func (s *PGStore) Increment(ctx context.Context, userID uuid.UUID, day gate.Day, feature gate.FeatureKey) (int64, error) {
	column, ok := counterColumn(feature)
	if !ok {
		return 0, gate.ErrFeatureNotCountable
	}

	// column comes from the closed counterColumn mapping, never from input.
	query := fmt.Sprintf(
		`INSERT INTO usage_counters (user_id, day, %[1]s)
		 VALUES ($1, $2, 1)
		 ON CONFLICT (user_id, day)
		 DO UPDATE SET %[1]s = usage_counters.%[1]s + 1, updated_at = now()
		 RETURNING %[1]s`, column)

	var count int64
	if err := s.pool.QueryRow(ctx, query, userID, string(day)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
