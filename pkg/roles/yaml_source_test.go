package roles_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/roles"
)

func TestFileSource_Load(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads grants from yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "roles.yaml")
		content := `staff:
  - view_dashboard
  - create_sales
manager:
  - view_dashboard
  - create_sales
  - process_refunds
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		m, err := roles.NewMatrix(ctx, roles.NewFileSource(path))
		require.NoError(t, err)

		assert.True(t, m.HasPermission(roles.RoleManager, roles.PermProcessRefunds))
		assert.False(t, m.HasPermission(roles.RoleStaff, roles.PermProcessRefunds))
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		src := roles.NewFileSource(filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := src.Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrFailedToLoadMatrix))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not: [valid"), 0o600))

		_, err := roles.NewFileSource(path).Load(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrFailedToLoadMatrix))
	})

	t.Run("typo in permission caught at matrix build", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "roles.yaml")
		require.NoError(t, os.WriteFile(path, []byte("staff:\n  - view_dashbord\n"), 0o600))

		_, err := roles.NewMatrix(ctx, roles.NewFileSource(path))
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrUnknownPermission))
	})
}
