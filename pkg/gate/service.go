package gate

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// UsageStore defines the persistence contract for daily usage counters.
// One logical row exists per (user, day); rows are created lazily on the
// first increment and a missing row reads as all-zero usage.
type UsageStore interface {
	// Day returns the usage counters for a user on a calendar day.
	// A missing row is not an error: implementations return the zero value.
	Day(ctx context.Context, userID uuid.UUID, day Day) (DayUsage, error)

	// Increment atomically adds one to the feature's counter for the day,
	// creating the row if absent, and returns the resulting counter value.
	// Must be a single atomic upsert-with-increment to avoid lost updates
	// under concurrent calls.
	Increment(ctx context.Context, userID uuid.UUID, day Day, feature FeatureKey) (int64, error)
}

// Service evaluates feature access against daily caps and records usage.
//
// Store errors never produce a permissive Decision: evaluation fails closed
// with ErrStoreUnavailable and the caller surfaces a retry message.
type Service struct {
	// Immutable after construction; thread-safety relies on this.
	policies    map[FeatureKey]Policy
	store       UsageStore
	resolveTier TierResolver
}

// New creates a gate Service from a policy source, a usage store and a tier
// resolver. A nil source falls back to the compiled-in defaults; a nil
// resolver falls back to TierContextResolver.
func New(ctx context.Context, src PolicySource, store UsageStore, resolveTier TierResolver) (*Service, error) {
	if src == nil {
		src = NewInMemSource(DefaultPolicies())
	}

	policies, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPolicies, err)
	}
	if err := validatePolicies(policies); err != nil {
		return nil, err
	}

	if store == nil {
		store = NewMemoryStore()
	}
	if resolveTier == nil {
		resolveTier = TierContextResolver
	}

	return &Service{
		policies:    policies,
		store:       store,
		resolveTier: resolveTier,
	}, nil
}

// CanAccess decides whether the user may use the feature on the given day.
// Read-only: repeated calls without an intervening Increment return the same
// Decision. A missing counter row counts as zero usage.
func (s *Service) CanAccess(ctx context.Context, userID uuid.UUID, feature FeatureKey, day Day) (Decision, error) {
	tier, limit, err := s.resolveLimit(ctx, userID, feature)
	if err != nil {
		return Decision{}, err
	}

	switch limit {
	case Unlimited:
		observeCheck(feature, tier, outcomeAllowed)
		return Decision{Allowed: true, Remaining: Unlimited, Limit: Unlimited, Tier: tier}, nil
	case 0:
		// Boolean gate: denied on cap alone, no store round trip.
		observeCheck(feature, tier, outcomeDenied)
		return Decision{Allowed: false, Remaining: 0, Limit: 0, Tier: tier}, nil
	}

	usage, err := s.store.Day(ctx, userID, day)
	if err != nil {
		observeStoreError("read")
		return Decision{}, errors.Join(ErrStoreUnavailable, err)
	}

	return s.decide(feature, tier, limit, usage.count(feature)), nil
}

// Increment records one unit of feature usage for the day. It is called after
// the gated action has actually succeeded; a failure here is reported as
// ErrIncrementFailed but the action itself is not rolled back.
func (s *Service) Increment(ctx context.Context, userID uuid.UUID, feature FeatureKey, day Day) error {
	if _, exists := s.policies[feature]; !exists {
		return ErrUnknownFeature
	}
	if !feature.Countable() {
		return ErrFeatureNotCountable
	}

	if _, err := s.store.Increment(ctx, userID, day, feature); err != nil {
		observeStoreError("increment")
		return errors.Join(ErrIncrementFailed, err)
	}
	observeIncrement(feature)
	return nil
}

// Consume collapses evaluation and increment into a single atomic store round
// trip: the counter is incremented first and the returned value is compared
// against the cap. Use it when the cap must hold exactly under concurrent
// requests; CanAccess+Increment remains the best-effort two-step flow.
//
// A denied Consume has still bumped the counter past the cap, which is
// harmless: the user was already out of quota.
func (s *Service) Consume(ctx context.Context, userID uuid.UUID, feature FeatureKey, day Day) (Decision, error) {
	tier, limit, err := s.resolveLimit(ctx, userID, feature)
	if err != nil {
		return Decision{}, err
	}

	if limit == 0 {
		observeCheck(feature, tier, outcomeDenied)
		return Decision{Allowed: false, Remaining: 0, Limit: 0, Tier: tier}, nil
	}

	// Validation guarantees counterless features carry 0 or Unlimited caps,
	// so reaching here with one means an uncapped boolean gate: nothing to count.
	if !feature.Countable() {
		observeCheck(feature, tier, outcomeAllowed)
		return Decision{Allowed: true, Remaining: Unlimited, Limit: Unlimited, Tier: tier}, nil
	}

	count, err := s.store.Increment(ctx, userID, day, feature)
	if err != nil {
		observeStoreError("increment")
		return Decision{}, errors.Join(ErrIncrementFailed, err)
	}
	observeIncrement(feature)

	if limit == Unlimited {
		observeCheck(feature, tier, outcomeAllowed)
		return Decision{Allowed: true, Remaining: Unlimited, Limit: Unlimited, Tier: tier}, nil
	}

	decision := Decision{
		Allowed:   count <= limit,
		Remaining: max(0, limit-count),
		Limit:     limit,
		Tier:      tier,
	}
	observeDecision(feature, tier, decision.Allowed)
	return decision, nil
}

// Quotas returns the current Decision for every configured feature, for
// dashboard and paywall screens. Counterless features report without a store
// read; one read covers the rest.
func (s *Service) Quotas(ctx context.Context, userID uuid.UUID, day Day) (map[FeatureKey]Decision, error) {
	tier, err := s.resolveTier(ctx, userID)
	if err != nil {
		return nil, err
	}

	usage, err := s.store.Day(ctx, userID, day)
	if err != nil {
		observeStoreError("read")
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	result := make(map[FeatureKey]Decision, len(s.policies))
	for feature, policy := range s.policies {
		limit := policy.limitFor(tier)
		switch limit {
		case Unlimited:
			result[feature] = Decision{Allowed: true, Remaining: Unlimited, Limit: Unlimited, Tier: tier}
		case 0:
			result[feature] = Decision{Allowed: false, Remaining: 0, Limit: 0, Tier: tier}
		default:
			count := usage.count(feature)
			result[feature] = Decision{
				Allowed:   count < limit,
				Remaining: max(0, limit-count),
				Limit:     limit,
				Tier:      tier,
			}
		}
	}
	return result, nil
}

// resolveLimit resolves the caller's tier and the cap applying to the feature.
func (s *Service) resolveLimit(ctx context.Context, userID uuid.UUID, feature FeatureKey) (Tier, int64, error) {
	tier, err := s.resolveTier(ctx, userID)
	if err != nil {
		return "", 0, err
	}

	policy, exists := s.policies[feature]
	if !exists {
		return "", 0, ErrUnknownFeature
	}

	return tier, policy.limitFor(tier), nil
}

// decide builds a Decision from a finite cap and the current count.
func (s *Service) decide(feature FeatureKey, tier Tier, limit, count int64) Decision {
	decision := Decision{
		Allowed:   count < limit,
		Remaining: max(0, limit-count),
		Limit:     limit,
		Tier:      tier,
	}
	observeDecision(feature, tier, decision.Allowed)
	return decision
}
