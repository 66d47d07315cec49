// Package plan provides the subscription side of the entitlement
// decision: the catalog of tiers with their resource ceilings and
// feature flags, the trial-window arithmetic, and the resolver from
// external billing product identifiers to internal plan IDs.
//
// Key concepts:
//
//   - Plan: a tier with per-resource ceilings (-1 means unlimited,
//     0 means disallowed) and a set of enabled feature flags
//   - Catalog: the immutable set of tiers, loaded once at startup
//   - ProductMap: billing product ID → plan ID; unmapped products are
//     an explicit ErrUnknownProduct, never a silent default
//   - Trial window: half-open [startedAt, startedAt+N days)
//
// Basic usage:
//
//	catalog, err := plan.NewCatalog(ctx, nil) // built-in tiers
//
//	limits, _ := catalog.LimitsFor(plan.Starter)
//	if plan.IsLimitExceeded(current, limits[plan.ResourceProducts]) {
//	    // ceiling reached
//	}
//
//	if plan.IsTrialActive(org.PlanStartedAt, time.Now(), plan.DefaultTrialDays) {
//	    // trial organizations evaluate against the highest tier
//	}
package plan
