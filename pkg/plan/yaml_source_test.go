package plan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/plan"
)

func TestFileSource_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads catalog from yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plans.yaml")
		content := `starter:
  id: starter
  name: Starter
  limits:
    products: 50
    customers: 100
    locations: 1
  features:
    - email_alerts
  price:
    amount: 2900
    currency: USD
  interval: monthly
  public: true
enterprise:
  id: enterprise
  name: Enterprise
  limits:
    products: -1
    customers: -1
    locations: -1
  features:
    - multi_location
  price:
    amount: 19900
    currency: USD
  interval: monthly
  public: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		c, err := plan.NewCatalog(ctx, plan.NewFileSource(path))
		require.NoError(t, err)

		starter, err := c.Get(plan.Starter)
		require.NoError(t, err)
		assert.Equal(t, int64(50), starter.LimitFor(plan.ResourceProducts))
		assert.Equal(t, int64(2900), starter.Price.Amount)
		assert.True(t, starter.HasFeature(plan.FeatureEmailAlerts))

		assert.Equal(t, plan.Enterprise, c.Highest().ID)
		assert.Equal(t, plan.Unlimited, c.Highest().LimitFor(plan.ResourceCustomers))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, plan.ErrFailedToLoadPlans))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plans.yaml")
		require.NoError(t, os.WriteFile(path, []byte("starter: ["), 0o600))

		_, err := plan.NewFileSource(path).Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, plan.ErrFailedToLoadPlans))
	})
}
