package billing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/poskit/pkg/plan"
)

// pgStore is a SubscriptionStore over Postgres. Schema lives in
// migrations/00001_billing_subscriptions.sql.
type pgStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore returns a SubscriptionStore backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool) SubscriptionStore {
	if pool == nil {
		panic("billing: pgx pool is required")
	}
	return &pgStore{pool: pool}
}

func (s *pgStore) Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error) {
	var (
		sub    Subscription
		planID string
		status string
	)

	err := s.pool.QueryRow(ctx, `
		SELECT organization_id, plan_id, status, provider_sub_id,
		       started_at, cancelled_at, updated_at
		FROM billing_subscriptions
		WHERE organization_id = $1`, orgID).Scan(
		&sub.OrgID, &planID, &status, &sub.ProviderSubID,
		&sub.StartedAt, &sub.CancelledAt, &sub.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubscriptionNotFound
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}

	sub.PlanID = plan.ID(planID)
	sub.Status = Status(status)
	return &sub, nil
}

func (s *pgStore) Save(ctx context.Context, sub *Subscription) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO billing_subscriptions
			(organization_id, plan_id, status, provider_sub_id, started_at, cancelled_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (organization_id) DO UPDATE SET
			plan_id = EXCLUDED.plan_id,
			status = EXCLUDED.status,
			provider_sub_id = EXCLUDED.provider_sub_id,
			cancelled_at = EXCLUDED.cancelled_at,
			updated_at = EXCLUDED.updated_at`,
		sub.OrgID, string(sub.PlanID), string(sub.Status), sub.ProviderSubID,
		sub.StartedAt, sub.CancelledAt, sub.UpdatedAt)
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
