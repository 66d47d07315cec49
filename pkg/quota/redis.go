package quota

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sellora/poskit/pkg/plan"
)

// reserveScript increments the counter only when the result stays at or
// under the ceiling (-1 means unlimited). Returns the new counter value
// on success or -1 when the claim is rejected; the whole claim is one
// Redis command, so concurrent claims serialize server-side.
var reserveScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local delta = tonumber(ARGV[1])
local limit = tonumber(ARGV[2])
if limit >= 0 and current + delta > limit then
  return -1
end
return redis.call('INCRBY', KEYS[1], delta)
`)

// redisReserver reserves capacity against Redis counters. Suited to
// deployments that keep hot-path reservations out of the transactional
// store; counters for periodic resources expire with their period.
type redisReserver struct {
	client *redis.Client
	limits LimitResolver
	prefix string
	now    func() time.Time
}

// NewRedisReserver returns a Reserver over the given Redis client.
func NewRedisReserver(client *redis.Client, limits LimitResolver) Reserver {
	if client == nil {
		panic("quota: redis client is required")
	}
	if limits == nil {
		panic("quota: LimitResolver is required")
	}
	return &redisReserver{
		client: client,
		limits: limits,
		prefix: "quota",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *redisReserver) Reserve(ctx context.Context, orgID uuid.UUID, res plan.Resource, delta int64) (*Reservation, error) {
	if delta <= 0 {
		return nil, ErrInvalidDelta
	}

	limit, err := r.limits(ctx, orgID, res)
	if err != nil {
		return nil, err
	}

	period := periodStart(res, r.now())
	key := r.key(orgID, res, period)

	used, err := reserveScript.Run(ctx, r.client, []string{key},
		strconv.FormatInt(delta, 10), strconv.FormatInt(limit, 10)).Int64()
	if err != nil {
		return nil, errors.Join(ErrReservationUnavailable, err)
	}

	if used < 0 {
		current, getErr := r.client.Get(ctx, key).Int64()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return nil, errors.Join(ErrQuotaExceeded, errFromCeiling(0, limit))
		}
		return nil, errors.Join(ErrQuotaExceeded, errFromCeiling(current, limit))
	}

	// Monthly counters clean themselves up after the period rolls over.
	if res == plan.ResourceSales {
		_ = r.client.ExpireNX(ctx, key, 62*24*time.Hour).Err()
	}

	return &Reservation{
		OrgID:       orgID,
		Resource:    res,
		Delta:       delta,
		PeriodStart: period,
		Used:        used,
	}, nil
}

func (r *redisReserver) Release(ctx context.Context, reservation *Reservation) error {
	if reservation == nil || reservation.Delta <= 0 {
		return ErrInvalidDelta
	}

	key := r.key(reservation.OrgID, reservation.Resource, reservation.PeriodStart)
	if err := r.client.DecrBy(ctx, key, reservation.Delta).Err(); err != nil {
		return errors.Join(ErrReservationUnavailable, err)
	}
	return nil
}

func (r *redisReserver) key(orgID uuid.UUID, res plan.Resource, period time.Time) string {
	if period.IsZero() {
		return fmt.Sprintf("%s:%s:%s", r.prefix, orgID, res)
	}
	return fmt.Sprintf("%s:%s:%s:%s", r.prefix, orgID, res, period.Format("2006-01"))
}
