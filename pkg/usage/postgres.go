package usage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sellora/poskit/pkg/plan"
)

// PostgresCounters builds counters over the product's system of record.
// Counts cover live rows only (soft-deleted rows are excluded) and sales
// are scoped to the current billing period.
type PostgresCounters struct {
	pool *pgxpool.Pool
}

// NewPostgresCounters returns counters backed by the given pool.
func NewPostgresCounters(pool *pgxpool.Pool) *PostgresCounters {
	if pool == nil {
		panic("usage: pgx pool is required")
	}
	return &PostgresCounters{pool: pool}
}

// RegisterAll registers a counter for every countable resource.
func (c *PostgresCounters) RegisterAll(r Registry) {
	r.Register(plan.ResourceProducts, c.Products)
	r.Register(plan.ResourceCustomers, c.Customers)
	r.Register(plan.ResourceTeamMembers, c.TeamMembers)
	r.Register(plan.ResourceSales, c.MonthlySales)
	r.Register(plan.ResourceLocations, c.Locations)
}

// Products counts live products for the organization.
func (c *PostgresCounters) Products(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.count(ctx,
		`SELECT COUNT(*) FROM products WHERE organization_id = $1 AND deleted_at IS NULL`,
		orgID)
}

// Customers counts live customers for the organization.
func (c *PostgresCounters) Customers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.count(ctx,
		`SELECT COUNT(*) FROM customers WHERE organization_id = $1 AND deleted_at IS NULL`,
		orgID)
}

// TeamMembers counts active memberships for the organization.
func (c *PostgresCounters) TeamMembers(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.count(ctx,
		`SELECT COUNT(*) FROM memberships WHERE organization_id = $1`,
		orgID)
}

// MonthlySales counts sales recorded since the start of the current
// billing period (calendar month, UTC).
func (c *PostgresCounters) MonthlySales(ctx context.Context, orgID uuid.UUID) (int64, error) {
	periodStart := currentPeriodStart(time.Now())
	var current int64
	err := c.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM sales WHERE organization_id = $1 AND created_at >= $2`,
		orgID, periodStart).Scan(&current)
	if err != nil {
		return 0, errors.Join(ErrUsageUnavailable, err)
	}
	return current, nil
}

// Locations counts live locations for the organization.
func (c *PostgresCounters) Locations(ctx context.Context, orgID uuid.UUID) (int64, error) {
	return c.count(ctx,
		`SELECT COUNT(*) FROM locations WHERE organization_id = $1 AND deleted_at IS NULL`,
		orgID)
}

func (c *PostgresCounters) count(ctx context.Context, query string, orgID uuid.UUID) (int64, error) {
	var current int64
	if err := c.pool.QueryRow(ctx, query, orgID).Scan(&current); err != nil {
		return 0, errors.Join(ErrUsageUnavailable, err)
	}
	return current, nil
}

// currentPeriodStart returns the first instant of the calendar month
// containing t, in UTC.
func currentPeriodStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
