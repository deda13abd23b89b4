package gate

import (
	"time"
)

// FeatureKey identifies a gated capability of the application.
type FeatureKey string

// Gated features. The set is closed: dynamic inputs (YAML policies, HTTP
// parameters) must resolve to one of these keys or fail with ErrUnknownFeature.
const (
	FeatureLogMeal          FeatureKey = "log_meal"
	FeaturePhotoAnalysis    FeatureKey = "photo_analysis"
	FeatureAIMessage        FeatureKey = "ai_message"
	FeatureAdvancedWorkouts FeatureKey = "advanced_workouts"
)

// Tier is a subscription level controlling which daily cap applies.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

const (
	// Unlimited indicates no daily cap for a feature (-1 chosen for SQL compatibility)
	Unlimited int64 = -1
)

// Policy holds the per-tier daily caps for a single feature.
type Policy struct {
	Free    int64 `yaml:"free"`
	Premium int64 `yaml:"premium"`
}

// limitFor selects the cap that applies to the given tier.
// Unknown tiers get the free cap, the most restrictive choice.
func (p Policy) limitFor(tier Tier) int64 {
	if tier == TierPremium {
		return p.Premium
	}
	return p.Free
}

// Day is a calendar day with no time component, formatted as YYYY-MM-DD (UTC).
// It is safe to use directly as a SQL date literal or a cache key segment.
type Day string

// DayOf truncates a timestamp to its UTC calendar day.
func DayOf(t time.Time) Day {
	return Day(t.UTC().Format(time.DateOnly))
}

// Today returns the current UTC calendar day.
func Today() Day {
	return DayOf(time.Now())
}

// DayUsage holds the counters of a single (user, day) row.
// The zero value represents a missing row: no usage recorded yet.
type DayUsage struct {
	MealsLogged    int64
	PhotoAnalyses  int64
	AIMessagesSent int64
}

// count returns the counter tracking the given feature.
// Features without a counter (boolean gates) always read as zero.
func (u DayUsage) count(feature FeatureKey) int64 {
	switch feature {
	case FeatureLogMeal:
		return u.MealsLogged
	case FeaturePhotoAnalysis:
		return u.PhotoAnalyses
	case FeatureAIMessage:
		return u.AIMessagesSent
	default:
		return 0
	}
}

// Countable reports whether the feature has a usage counter behind it.
// Boolean gates like advanced_workouts are policed by cap alone.
func (f FeatureKey) Countable() bool {
	switch f {
	case FeatureLogMeal, FeaturePhotoAnalysis, FeatureAIMessage:
		return true
	default:
		return false
	}
}

// Decision is the outcome of an access evaluation.
// Remaining and Limit are Unlimited for uncapped features.
type Decision struct {
	Allowed   bool  `json:"allowed"`
	Remaining int64 `json:"remaining"`
	Limit     int64 `json:"limit"`
	Tier      Tier  `json:"tier"`
}
