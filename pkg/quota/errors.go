package quota

import (
	"errors"
	"fmt"
)

// Domain errors for quota reservation.
var (
	// ErrQuotaExceeded means the claim would pass the plan ceiling. A
	// policy outcome, not a fault: handlers render it as an upgrade
	// prompt with the ceiling attached.
	ErrQuotaExceeded = errors.New("quota.errors.quota_exceeded")

	// ErrReservationUnavailable means the backing store could not answer.
	// Must never be treated as an implicit allow.
	ErrReservationUnavailable = errors.New("quota.errors.reservation_unavailable")

	ErrInvalidDelta = errors.New("quota.errors.invalid_delta")
)

// CeilingError carries the counter state behind a quota denial so
// handlers can render "47 of 50 used" without another query. Joined
// onto ErrQuotaExceeded; unwrap with errors.As.
type CeilingError struct {
	Current int64
	Limit   int64
}

func (e *CeilingError) Error() string {
	return fmt.Sprintf("quota ceiling reached: %d of %d used", e.Current, e.Limit)
}

func errFromCeiling(current, limit int64) error {
	return &CeilingError{Current: current, Limit: limit}
}
