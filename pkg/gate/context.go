package gate

import (
	"context"

	"github.com/google/uuid"
)

// Tier context management
type tierCtxKey struct{}

// SetTierToContext stores the subscription tier in the context for downstream access.
func SetTierToContext(ctx context.Context, tier Tier) context.Context {
	return context.WithValue(ctx, tierCtxKey{}, tier)
}

// GetTierFromContext retrieves the subscription tier from the context, if present.
func GetTierFromContext(ctx context.Context) (Tier, bool) {
	tier, ok := ctx.Value(tierCtxKey{}).(Tier)
	return tier, ok
}

// TierResolver resolves the subscription tier for a given user.
type TierResolver func(ctx context.Context, userID uuid.UUID) (Tier, error)

// TierContextResolver is the default resolver: reads the tier set during
// request processing instead of hitting the profile store per check.
func TierContextResolver(ctx context.Context, _ uuid.UUID) (Tier, error) {
	tier, ok := GetTierFromContext(ctx)
	if !ok {
		return "", ErrTierNotInContext
	}
	return tier, nil
}
