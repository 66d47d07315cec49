// Package billing holds the subscription state the entitlement engine
// consumes: which plan an organization has paid for and whether that
// subscription is still good.
//
// This package deliberately stops short of payment processing. Checkout
// sessions and webhook signature verification belong to the billing
// provider integration; what arrives here are normalized lifecycle
// events (created, updated, cancelled, payment failed) carrying the
// provider's product identifier. ApplyEvent resolves that identifier
// through the plan catalog's ProductMap, so an unmapped product surfaces
// as a misconfiguration fault instead of silently granting a plan.
package billing
