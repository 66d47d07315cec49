package billing

import "errors"

// Domain errors for subscription state.
var (
	ErrSubscriptionNotFound = errors.New("billing.errors.subscription_not_found")
	ErrStoreUnavailable     = errors.New("billing.errors.store_unavailable")
	ErrInvalidEvent         = errors.New("billing.errors.invalid_event")
)
