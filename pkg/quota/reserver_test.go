package quota_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/quota"
)

func TestReservationPeriods(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := quota.NewInMemReserver(staticLimits(plan.Unlimited))
	orgID := uuid.New()

	t.Run("sales reservations belong to the current calendar month", func(t *testing.T) {
		t.Parallel()

		res, err := r.Reserve(ctx, orgID, plan.ResourceSales, 1)
		require.NoError(t, err)

		now := time.Now().UTC()
		want := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, res.PeriodStart)
	})

	t.Run("lifetime resources share the zero period", func(t *testing.T) {
		t.Parallel()

		res, err := r.Reserve(ctx, orgID, plan.ResourceProducts, 1)
		require.NoError(t, err)
		assert.True(t, res.PeriodStart.IsZero())

		res, err = r.Reserve(ctx, orgID, plan.ResourceTeamMembers, 1)
		require.NoError(t, err)
		assert.True(t, res.PeriodStart.IsZero())
	})
}
