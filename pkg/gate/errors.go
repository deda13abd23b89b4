package gate

import "errors"

var (
	// Policy errors
	ErrUnknownFeature       = errors.New("gate: unknown feature key")
	ErrInvalidPolicy        = errors.New("gate: invalid policy configuration")
	ErrFailedToLoadPolicies = errors.New("gate: failed to load policies")

	// Evaluation errors
	ErrFeatureNotCountable = errors.New("gate: feature has no usage counter")
	ErrStoreUnavailable    = errors.New("gate: usage store unavailable")
	ErrIncrementFailed     = errors.New("gate: usage counter increment failed")

	// Resolver errors
	ErrTierNotInContext = errors.New("gate: tier not found in context")
)
