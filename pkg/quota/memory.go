package quota

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

type counterKey struct {
	orgID  uuid.UUID
	res    plan.Resource
	period time.Time
}

// memReserver keeps counters under a mutex. Intended for tests and
// single-node development; production deployments use the Postgres or
// Redis reserver.
type memReserver struct {
	mu     sync.Mutex
	limits LimitResolver
	used   map[counterKey]int64
	now    func() time.Time
}

// NewInMemReserver returns an in-memory Reserver with all counters at
// zero.
func NewInMemReserver(limits LimitResolver) Reserver {
	if limits == nil {
		panic("quota: LimitResolver is required")
	}
	return &memReserver{
		limits: limits,
		used:   make(map[counterKey]int64),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *memReserver) Reserve(ctx context.Context, orgID uuid.UUID, res plan.Resource, delta int64) (*Reservation, error) {
	if delta <= 0 {
		return nil, ErrInvalidDelta
	}

	limit, err := r.limits(ctx, orgID, res)
	if err != nil {
		return nil, err
	}

	key := counterKey{orgID: orgID, res: res, period: periodStart(res, r.now())}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.used[key]
	if limit != plan.Unlimited && current+delta > limit {
		return nil, errors.Join(ErrQuotaExceeded, errFromCeiling(current, limit))
	}

	r.used[key] = current + delta

	return &Reservation{
		OrgID:       orgID,
		Resource:    res,
		Delta:       delta,
		PeriodStart: key.period,
		Used:        current + delta,
	}, nil
}

func (r *memReserver) Release(ctx context.Context, reservation *Reservation) error {
	if reservation == nil || reservation.Delta <= 0 {
		return ErrInvalidDelta
	}

	key := counterKey{
		orgID:  reservation.OrgID,
		res:    reservation.Resource,
		period: reservation.PeriodStart,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	remaining := r.used[key] - reservation.Delta
	if remaining < 0 {
		remaining = 0
	}
	r.used[key] = remaining
	return nil
}
