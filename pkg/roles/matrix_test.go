package roles_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sellora/poskit/pkg/roles"
)

func TestNewMatrix(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("nil source falls back to default grants", func(t *testing.T) {
		t.Parallel()

		m, err := roles.NewMatrix(ctx, nil)
		require.NoError(t, err)
		assert.True(t, m.HasPermission(roles.RoleAdmin, roles.PermManageBilling))
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()

		src := roles.NewInMemSource(map[roles.Role][]roles.Permission{
			"superuser": {roles.PermViewDashboard},
		})
		_, err := roles.NewMatrix(ctx, src)
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrUnknownRole))
	})

	t.Run("rejects permission outside the closed set", func(t *testing.T) {
		t.Parallel()

		src := roles.NewInMemSource(map[roles.Role][]roles.Permission{
			roles.RoleStaff: {"launch_rockets"},
		})
		_, err := roles.NewMatrix(ctx, src)
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrUnknownPermission))
	})

	t.Run("wraps source failure", func(t *testing.T) {
		t.Parallel()

		_, err := roles.NewMatrix(ctx, failingSource{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, roles.ErrFailedToLoadMatrix))
	})
}

type failingSource struct{}

func (failingSource) Load(ctx context.Context) (map[roles.Role][]roles.Permission, error) {
	return nil, errors.New("source down")
}

func TestMatrix_HasPermission(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, err := roles.NewMatrix(ctx, nil)
	require.NoError(t, err)

	tests := []struct {
		name string
		role roles.Role
		perm roles.Permission
		want bool
	}{
		{"staff can ring up sales", roles.RoleStaff, roles.PermCreateSales, true},
		{"staff can apply discounts", roles.RoleStaff, roles.PermApplyDiscounts, true},
		{"staff can create customers", roles.RoleStaff, roles.PermCreateCustomers, true},
		{"staff cannot void transactions", roles.RoleStaff, roles.PermVoidTransactions, false},
		{"staff cannot refund", roles.RoleStaff, roles.PermProcessRefunds, false},
		{"staff cannot create products", roles.RoleStaff, roles.PermCreateProducts, false},
		{"staff cannot manage team", roles.RoleStaff, roles.PermManageTeam, false},
		{"manager can void transactions", roles.RoleManager, roles.PermVoidTransactions, true},
		{"manager can refund", roles.RoleManager, roles.PermProcessRefunds, true},
		{"manager can invite members", roles.RoleManager, roles.PermInviteMembers, true},
		{"manager cannot change roles", roles.RoleManager, roles.PermChangeRoles, false},
		{"manager cannot manage billing", roles.RoleManager, roles.PermManageBilling, false},
		{"manager cannot delete products", roles.RoleManager, roles.PermDeleteProducts, false},
		{"admin can manage billing", roles.RoleAdmin, roles.PermManageBilling, true},
		{"admin can change roles", roles.RoleAdmin, roles.PermChangeRoles, true},
		{"unknown role fails closed", roles.Role("owner"), roles.PermViewDashboard, false},
		{"empty role fails closed", roles.Role(""), roles.PermViewDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, m.HasPermission(tt.role, tt.perm))
		})
	}
}

func TestMatrix_DefaultGrantsShape(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, err := roles.NewMatrix(ctx, nil)
	require.NoError(t, err)

	t.Run("admin holds every permission", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.HasAllPermissions(roles.RoleAdmin, roles.AllPermissions...))
	})

	t.Run("staff grants are a subset of manager grants", func(t *testing.T) {
		t.Parallel()

		managerPerms := m.PermissionsFor(roles.RoleManager)
		for p := range m.PermissionsFor(roles.RoleStaff) {
			assert.Contains(t, managerPerms, p)
		}
	})

	t.Run("every role grants fewer or equal permissions than admin", func(t *testing.T) {
		t.Parallel()

		adminCount := len(m.PermissionsFor(roles.RoleAdmin))
		assert.Equal(t, len(roles.AllPermissions), adminCount)
		assert.LessOrEqual(t, len(m.PermissionsFor(roles.RoleManager)), adminCount)
		assert.LessOrEqual(t, len(m.PermissionsFor(roles.RoleStaff)), adminCount)
	})
}

func TestMatrix_HasAnyAllPermissions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, err := roles.NewMatrix(ctx, nil)
	require.NoError(t, err)

	t.Run("any matches on a single grant", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.HasAnyPermission(roles.RoleStaff, roles.PermManageBilling, roles.PermCreateSales))
	})

	t.Run("any false when nothing matches", func(t *testing.T) {
		t.Parallel()
		assert.False(t, m.HasAnyPermission(roles.RoleStaff, roles.PermManageBilling, roles.PermChangeRoles))
	})

	t.Run("all requires every grant", func(t *testing.T) {
		t.Parallel()
		assert.True(t, m.HasAllPermissions(roles.RoleManager, roles.PermViewReports, roles.PermExportData))
		assert.False(t, m.HasAllPermissions(roles.RoleManager, roles.PermViewReports, roles.PermManageBilling))
	})

	t.Run("empty variadic set", func(t *testing.T) {
		t.Parallel()
		assert.False(t, m.HasAnyPermission(roles.RoleAdmin))
		assert.True(t, m.HasAllPermissions(roles.RoleAdmin))
	})

	t.Run("unknown role fails closed for both", func(t *testing.T) {
		t.Parallel()
		assert.False(t, m.HasAnyPermission(roles.Role("ghost"), roles.PermViewDashboard))
		assert.False(t, m.HasAllPermissions(roles.Role("ghost")))
	})
}

func TestMatrix_PermissionsFor(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m, err := roles.NewMatrix(ctx, nil)
	require.NoError(t, err)

	t.Run("unknown role yields empty set", func(t *testing.T) {
		t.Parallel()

		perms := m.PermissionsFor(roles.Role("ghost"))
		require.NotNil(t, perms)
		assert.Empty(t, perms)
	})

	t.Run("returned set is a copy", func(t *testing.T) {
		t.Parallel()

		perms := m.PermissionsFor(roles.RoleStaff)
		perms[roles.PermManageBilling] = struct{}{}
		assert.False(t, m.HasPermission(roles.RoleStaff, roles.PermManageBilling))
	})
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, roles.RoleAdmin.Valid())
	assert.True(t, roles.RoleManager.Valid())
	assert.True(t, roles.RoleStaff.Valid())
	assert.False(t, roles.Role("owner").Valid())
	assert.False(t, roles.Role("").Valid())
}

func TestRoleContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		ctx := roles.SetRoleToContext(context.Background(), roles.RoleManager)
		role, ok := roles.GetRoleFromContext(ctx)
		require.True(t, ok)
		assert.Equal(t, roles.RoleManager, role)
	})

	t.Run("absent role", func(t *testing.T) {
		t.Parallel()

		_, ok := roles.GetRoleFromContext(context.Background())
		assert.False(t, ok)
	})
}
