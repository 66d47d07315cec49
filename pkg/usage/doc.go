// Package usage computes current consumption of countable organization
// resources (products, customers, team members, sales this period) for
// entitlement decisions.
//
// Counters are pure reads against the system of record. There is no
// caching across requests: a stale count would let concurrent creates
// slip past a ceiling. Within one request a Snapshot may memoize counts
// so a single decision does not query the same resource twice.
//
// Failure mode matters here: an unreachable store surfaces as
// ErrUsageUnavailable, never as a zero count. A zero would make every
// quota check pass, which is the opposite of fail-safe.
//
// Basic usage:
//
//	counters := usage.NewRegistry()
//	usage.NewPostgresCounters(pool).RegisterAll(counters)
//
//	snap := usage.NewSnapshot(orgID, counters)
//	current, err := snap.Count(ctx, plan.ResourceProducts)
package usage
