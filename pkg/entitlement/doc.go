// Package entitlement is the decision point for authorization in the
// POS product: given an actor, an organization, a requested permission
// and optionally a resource about to be consumed, it answers allow or
// deny with a typed reason.
//
// The decision composes three independent axes, checked in order of
// cost and short-circuiting on the first denial:
//
//  1. Role: does the actor's membership role grant the permission
//     (pkg/roles; no I/O when the role is already in context)
//  2. Plan: does the organization have an active subscription, or a
//     live trial evaluated against a reference plan; expired trials
//     deny everything gated (pkg/billing, pkg/plan)
//  3. Feature and quota: is the capability enabled on the effective
//     plan, and does one more unit fit under the ceiling (pkg/usage)
//
// Denials are values (Decision with a Reason), faults are errors. A
// handler shows "upgrade your plan" for the former and fails the
// request for the latter; conflating them turns a database outage into
// a sales pitch.
//
// The engine decides, it never mutates. Callers creating countable
// resources must perform the write through pkg/quota's Reserver so two
// concurrent creates cannot both pass a ceiling only one fits under.
//
// Basic usage:
//
//	eng := entitlement.NewEngine(matrix, catalog, subs, members, orgs, counters)
//
//	decision, err := eng.Check(ctx, entitlement.CheckRequest{
//	    ActorID:    actorID,
//	    OrgID:      orgID,
//	    Permission: roles.PermCreateProducts,
//	    Resource:   plan.ResourceProducts,
//	})
//	if err != nil {
//	    // fault: 503, retryable
//	}
//	if !decision.Allowed {
//	    // decision.Reason says why; quota denials carry Current/Limit
//	}
package entitlement
