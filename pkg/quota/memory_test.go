package quota_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/quota"
)

// staticLimits resolves every resource to the same ceiling.
func staticLimits(limit int64) quota.LimitResolver {
	return func(ctx context.Context, orgID uuid.UUID, res plan.Resource) (int64, error) {
		return limit, nil
	}
}

func TestInMemReserver_Reserve(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("claims up to the ceiling", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(3))
		orgID := uuid.New()

		for want := int64(1); want <= 3; want++ {
			res, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
			require.NoError(t, err)
			assert.Equal(t, want, res.Used)
		}

		_, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, quota.ErrQuotaExceeded))

		var ceiling *quota.CeilingError
		require.True(t, errors.As(err, &ceiling))
		assert.Equal(t, int64(3), ceiling.Current)
		assert.Equal(t, int64(3), ceiling.Limit)
	})

	t.Run("unlimited ceiling never rejects", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(plan.Unlimited))
		orgID := uuid.New()

		for range 100 {
			_, err := r.Reserve(ctx, orgID, plan.ResourceCustomers, 1)
			require.NoError(t, err)
		}
	})

	t.Run("multi-unit delta rejected when it would pass the ceiling", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(5))
		orgID := uuid.New()

		_, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 4)
		require.NoError(t, err)

		_, err = r.Reserve(ctx, orgID, plan.ResourceProducts, 2)
		assert.True(t, errors.Is(err, quota.ErrQuotaExceeded))

		res, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.Used)
	})

	t.Run("non-positive delta rejected", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(10))
		_, err := r.Reserve(ctx, uuid.New(), plan.ResourceProducts, 0)
		assert.True(t, errors.Is(err, quota.ErrInvalidDelta))
		_, err = r.Reserve(ctx, uuid.New(), plan.ResourceProducts, -1)
		assert.True(t, errors.Is(err, quota.ErrInvalidDelta))
	})

	t.Run("organizations are isolated", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(1))
		_, err := r.Reserve(ctx, uuid.New(), plan.ResourceLocations, 1)
		require.NoError(t, err)
		_, err = r.Reserve(ctx, uuid.New(), plan.ResourceLocations, 1)
		require.NoError(t, err)
	})

	t.Run("limit resolver failure propagates", func(t *testing.T) {
		t.Parallel()

		resolverErr := errors.New("plan lookup failed")
		r := quota.NewInMemReserver(func(ctx context.Context, orgID uuid.UUID, res plan.Resource) (int64, error) {
			return 0, resolverErr
		})

		_, err := r.Reserve(ctx, uuid.New(), plan.ResourceProducts, 1)
		assert.True(t, errors.Is(err, resolverErr))
	})

	t.Run("nil resolver panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { quota.NewInMemReserver(nil) })
	})
}

func TestInMemReserver_ConcurrentLastUnit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// 50 goroutines race for one remaining unit under a ceiling of 50
	// with 49 already used. Exactly one must win.
	r := quota.NewInMemReserver(staticLimits(50))
	orgID := uuid.New()

	_, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 49)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	granted := 0
	exceeded := 0

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				granted++
			case errors.Is(err, quota.ErrQuotaExceeded):
				exceeded++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, granted)
	assert.Equal(t, 49, exceeded)
}

func TestInMemReserver_Release(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("release frees capacity", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(1))
		orgID := uuid.New()

		res, err := r.Reserve(ctx, orgID, plan.ResourceLocations, 1)
		require.NoError(t, err)

		_, err = r.Reserve(ctx, orgID, plan.ResourceLocations, 1)
		require.Error(t, err)

		require.NoError(t, r.Release(ctx, res))

		_, err = r.Reserve(ctx, orgID, plan.ResourceLocations, 1)
		assert.NoError(t, err)
	})

	t.Run("release never drives the counter negative", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(2))
		orgID := uuid.New()

		res, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
		require.NoError(t, err)

		require.NoError(t, r.Release(ctx, res))
		require.NoError(t, r.Release(ctx, res)) // double release

		claimed, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claimed.Used)
	})

	t.Run("nil reservation rejected", func(t *testing.T) {
		t.Parallel()

		r := quota.NewInMemReserver(staticLimits(1))
		err := r.Release(ctx, nil)
		assert.True(t, errors.Is(err, quota.ErrInvalidDelta))
	})
}
