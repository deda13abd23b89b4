package usage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/vitalabs/vitakit/pkg/gate"
)

// defaultRetention keeps counter hashes around long enough for dashboards
// showing the current week before letting superseded days expire.
const defaultRetention = 7 * 24 * time.Hour

// RedisStore implements gate.UsageStore with one hash per (user, day).
type RedisStore struct {
	client    redis.UniversalClient
	retention time.Duration
}

// NewRedisStore returns a Redis-backed usage store.
// A non-positive retention falls back to the 7-day default.
func NewRedisStore(client redis.UniversalClient, retention time.Duration) *RedisStore {
	if retention <= 0 {
		retention = defaultRetention
	}
	return &RedisStore{client: client, retention: retention}
}

func usageKey(userID uuid.UUID, day gate.Day) string {
	return fmt.Sprintf("usage:%s:%s", userID, day)
}

// Day reads the counter hash for (userID, day). A missing key reads as zero
// usage; unparsable fields are treated as zero rather than failing the check.
func (s *RedisStore) Day(ctx context.Context, userID uuid.UUID, day gate.Day) (gate.DayUsage, error) {
	fields, err := s.client.HGetAll(ctx, usageKey(userID, day)).Result()
	if err != nil {
		return gate.DayUsage{}, err
	}

	parse := func(field string) int64 {
		v, _ := strconv.ParseInt(fields[field], 10, 64)
		return v
	}
	return gate.DayUsage{
		MealsLogged:    parse("meals_logged"),
		PhotoAnalyses:  parse("photo_analyses"),
		AIMessagesSent: parse("ai_messages_sent"),
	}, nil
}

// Increment bumps the feature's hash field atomically via HINCRBY and refreshes
// the key's TTL so the day's row outlives its usefulness window, not forever.
func (s *RedisStore) Increment(ctx context.Context, userID uuid.UUID, day gate.Day, feature gate.FeatureKey) (int64, error) {
	field, ok := counterColumn(feature)
	if !ok {
		return 0, gate.ErrFeatureNotCountable
	}

	key := usageKey(userID, day)

	pipe := s.client.TxPipeline()
	incr := pipe.HIncrBy(ctx, key, field, 1)
	pipe.Expire(ctx, key, s.retention)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
