package quota

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/poskit/pkg/plan"
)

// DB is the subset of pgx both *pgxpool.Pool and pgx.Tx satisfy, so a
// reserver can run standalone or inside the caller's transaction. The
// latter is the intended shape: reserve and insert the new row in the
// same transaction, and a rollback returns the capacity automatically.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

var (
	_ DB = (*pgxpool.Pool)(nil)
	_ DB = (pgx.Tx)(nil)
)

// pgReserver reserves capacity with a single conditional upsert on a
// per-(organization, resource, period) counter row. The increment and
// the ceiling comparison execute as one atomic statement, so no
// isolation level gymnastics are needed: concurrent claims serialize on
// the row and the ceiling predicate admits only what fits.
type pgReserver struct {
	db     DB
	limits LimitResolver
	now    func() time.Time
}

// NewPostgresReserver returns a Reserver over the quota_usage table
// (migrations/00002_quota_usage.sql). The limit resolver is consulted on
// every claim so plan changes take effect immediately.
func NewPostgresReserver(db DB, limits LimitResolver) Reserver {
	if db == nil {
		panic("quota: DB is required")
	}
	if limits == nil {
		panic("quota: LimitResolver is required")
	}
	return &pgReserver{
		db:     db,
		limits: limits,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *pgReserver) Reserve(ctx context.Context, orgID uuid.UUID, res plan.Resource, delta int64) (*Reservation, error) {
	if delta <= 0 {
		return nil, ErrInvalidDelta
	}

	limit, err := r.limits(ctx, orgID, res)
	if err != nil {
		return nil, err
	}

	period := periodStart(res, r.now())

	// Unlimited plans still book usage so dashboards and downgrades can
	// see real numbers, but skip the ceiling predicate.
	var (
		used int64
		row  pgx.Row
	)
	if limit == plan.Unlimited {
		row = r.db.QueryRow(ctx, `
			INSERT INTO quota_usage (organization_id, resource, period_start, used)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (organization_id, resource, period_start)
			DO UPDATE SET used = quota_usage.used + EXCLUDED.used
			RETURNING used`,
			orgID, string(res), period, delta)
	} else {
		row = r.db.QueryRow(ctx, `
			INSERT INTO quota_usage (organization_id, resource, period_start, used)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (organization_id, resource, period_start)
			DO UPDATE SET used = quota_usage.used + EXCLUDED.used
			WHERE quota_usage.used + EXCLUDED.used <= $5
			RETURNING used`,
			orgID, string(res), period, delta, limit)
	}

	if err := row.Scan(&used); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conditional update declined the claim: over the ceiling.
			return nil, quotaExceeded(ctx, r.db, orgID, res, period, limit)
		}
		return nil, errors.Join(ErrReservationUnavailable, err)
	}

	// A fresh row bypasses the ON CONFLICT predicate, so a first claim
	// larger than the ceiling must be caught here and compensated.
	if limit != plan.Unlimited && used > limit {
		if _, execErr := r.db.Exec(ctx, `
			UPDATE quota_usage SET used = used - $4
			WHERE organization_id = $1 AND resource = $2 AND period_start = $3`,
			orgID, string(res), period, delta); execErr != nil {
			return nil, errors.Join(ErrReservationUnavailable, execErr)
		}
		return nil, errors.Join(ErrQuotaExceeded, errFromCeiling(used-delta, limit))
	}

	return &Reservation{
		OrgID:       orgID,
		Resource:    res,
		Delta:       delta,
		PeriodStart: period,
		Used:        used,
	}, nil
}

func (r *pgReserver) Release(ctx context.Context, reservation *Reservation) error {
	if reservation == nil || reservation.Delta <= 0 {
		return ErrInvalidDelta
	}

	_, err := r.db.Exec(ctx, `
		UPDATE quota_usage SET used = GREATEST(used - $4, 0)
		WHERE organization_id = $1 AND resource = $2 AND period_start = $3`,
		reservation.OrgID, string(reservation.Resource), reservation.PeriodStart, reservation.Delta)
	if err != nil {
		return errors.Join(ErrReservationUnavailable, err)
	}
	return nil
}

// quotaExceeded fetches the current counter for the denial diagnostics.
// Best effort: the claim is already rejected either way.
func quotaExceeded(ctx context.Context, db DB, orgID uuid.UUID, res plan.Resource, period time.Time, limit int64) error {
	var current int64
	err := db.QueryRow(ctx, `
		SELECT used FROM quota_usage
		WHERE organization_id = $1 AND resource = $2 AND period_start = $3`,
		orgID, string(res), period).Scan(&current)
	if err != nil {
		return ErrQuotaExceeded
	}
	return errors.Join(ErrQuotaExceeded, errFromCeiling(current, limit))
}
