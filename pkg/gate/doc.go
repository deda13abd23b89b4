// Package gate enforces per-user daily usage caps for gated application
// features: meal logging, photo analysis, assistant messages and the
// premium-only workout library.
//
// Each feature carries a Policy with a free-tier and a premium-tier daily cap
// (Unlimited disables the cap). Usage lives in an external store as one row
// per user per calendar day; the store is injected, never a package-level
// client.
//
// Two enforcement flows are offered:
//
//   - CanAccess before the action, Increment after it succeeds. Two store
//     round trips; concurrent racers can overshoot the cap by the number of
//     racers. Best effort, matches the UI's allow-act-increment sequence.
//   - Consume: one atomic increment-and-compare round trip when the cap must
//     hold exactly.
//
// Store failures are never interpreted as permission: evaluation returns
// ErrStoreUnavailable and callers present a retry message.
//
// Basic usage:
//
//	svc, err := gate.New(ctx, nil, store, profile.TierResolver(profiles))
//	if err != nil {
//	    return err
//	}
//
//	decision, err := svc.CanAccess(ctx, userID, gate.FeatureLogMeal, gate.Today())
//	if err != nil {
//	    // store unavailable: surface a retry message, do not allow the action
//	}
//	if !decision.Allowed {
//	    // show the upgrade prompt with decision.Limit
//	}
//
//	// ... perform the gated write, then:
//	_ = svc.Increment(ctx, userID, gate.FeatureLogMeal, gate.Today())
package gate
