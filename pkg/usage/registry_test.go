package usage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/usage"
)

func TestRegistry_Count(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	orgID := uuid.New()

	t.Run("returns the counter's value", func(t *testing.T) {
		t.Parallel()

		r := usage.NewRegistry()
		r.Register(plan.ResourceProducts, func(ctx context.Context, id uuid.UUID) (int64, error) {
			assert.Equal(t, orgID, id)
			return 42, nil
		})

		current, err := r.Count(ctx, orgID, plan.ResourceProducts)
		require.NoError(t, err)
		assert.Equal(t, int64(42), current)
	})

	t.Run("missing counter is a fault", func(t *testing.T) {
		t.Parallel()

		r := usage.NewRegistry()
		_, err := r.Count(ctx, orgID, plan.ResourceLocations)
		require.Error(t, err)
		assert.True(t, errors.Is(err, usage.ErrNoCounterRegistered))
	})

	t.Run("counter failure surfaces as unavailable, never zero", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("connection refused")
		r := usage.NewRegistry()
		r.Register(plan.ResourceCustomers, func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, dbErr
		})

		_, err := r.Count(ctx, orgID, plan.ResourceCustomers)
		require.Error(t, err)
		assert.True(t, errors.Is(err, usage.ErrUsageUnavailable))
		assert.True(t, errors.Is(err, dbErr))
	})

	t.Run("already-unavailable errors are not double wrapped", func(t *testing.T) {
		t.Parallel()

		r := usage.NewRegistry()
		r.Register(plan.ResourceSales, func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 0, usage.ErrUsageUnavailable
		})

		_, err := r.Count(ctx, orgID, plan.ResourceSales)
		assert.Equal(t, usage.ErrUsageUnavailable, err)
	})

	t.Run("nil counter panics at registration", func(t *testing.T) {
		t.Parallel()

		r := usage.NewRegistry()
		assert.Panics(t, func() { r.Register(plan.ResourceProducts, nil) })
	})

	t.Run("register replaces an existing counter", func(t *testing.T) {
		t.Parallel()

		r := usage.NewRegistry()
		r.Register(plan.ResourceProducts, func(ctx context.Context, id uuid.UUID) (int64, error) { return 1, nil })
		r.Register(plan.ResourceProducts, func(ctx context.Context, id uuid.UUID) (int64, error) { return 2, nil })

		current, err := r.Count(ctx, orgID, plan.ResourceProducts)
		require.NoError(t, err)
		assert.Equal(t, int64(2), current)
	})
}
