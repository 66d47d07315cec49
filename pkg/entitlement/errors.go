package entitlement

import "errors"

// Faults the engine can return. These are infrastructure or
// configuration failures, distinct from deny decisions: a handler should
// fail the request (5xx) on a fault instead of showing an upgrade
// prompt.
var (
	ErrMembershipNotFound   = errors.New("entitlement.errors.membership_not_found")
	ErrOrganizationNotFound = errors.New("entitlement.errors.organization_not_found")
	ErrStoreUnavailable     = errors.New("entitlement.errors.store_unavailable")
)
