package quota

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

// Reserver atomically checks and reserves capacity for a resource
// increment. It closes the race between "check passed" and "write
// happens": two concurrent reservations for the last unit under a
// ceiling resolve to exactly one success and one ErrQuotaExceeded.
//
// Every creator of a countable resource must route through Reserve;
// creating directly after an advisory entitlement check is an
// integration bug.
type Reserver interface {
	// Reserve claims delta units of the resource for the organization.
	// Returns ErrQuotaExceeded when the claim would pass the plan
	// ceiling; other errors are infrastructure faults.
	Reserve(ctx context.Context, orgID uuid.UUID, res plan.Resource, delta int64) (*Reservation, error)

	// Release returns previously reserved units, compensating for a
	// creation that failed after its reservation succeeded, or for a
	// resource being deleted.
	Release(ctx context.Context, reservation *Reservation) error
}

// LimitResolver returns the current ceiling for a resource in an
// organization, typically the entitlement engine's effective plan
// lookup. Unlimited (-1) skips the ceiling entirely.
type LimitResolver func(ctx context.Context, orgID uuid.UUID, res plan.Resource) (int64, error)

// Reservation records a successful capacity claim so it can be released.
type Reservation struct {
	OrgID       uuid.UUID
	Resource    plan.Resource
	Delta       int64
	PeriodStart time.Time
	Used        int64 // counter value after the claim
}

// periodStart returns the accounting period a reservation belongs to.
// Sales reset each calendar month; other resources accumulate over the
// organization's lifetime and share a fixed zero period.
func periodStart(res plan.Resource, now time.Time) time.Time {
	if res == plan.ResourceSales {
		now = now.UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return time.Time{}
}
