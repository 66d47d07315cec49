package roles

import (
	"context"
	"errors"
	"fmt"
)

// Matrix answers role-permission questions. It is built once at startup
// and never mutated afterwards, so it is safe to share across requests
// without locking.
type Matrix interface {
	// HasPermission reports whether the role is granted the permission.
	// Unknown roles fail closed and return false.
	HasPermission(role Role, perm Permission) bool

	// HasAnyPermission reports whether the role holds at least one of the
	// given permissions.
	HasAnyPermission(role Role, perms ...Permission) bool

	// HasAllPermissions reports whether the role holds every one of the
	// given permissions.
	HasAllPermissions(role Role, perms ...Permission) bool

	// PermissionsFor returns the permission set granted to the role.
	// Unknown roles yield an empty set, never nil-panic or an error.
	PermissionsFor(role Role) map[Permission]struct{}
}

// Source provides the role→permissions grants the matrix is built from.
type Source interface {
	Load(ctx context.Context) (map[Role][]Permission, error)
}

type matrix struct {
	// grants is treated as immutable after construction; thread safety
	// depends on this.
	grants map[Role]map[Permission]struct{}
}

// NewMatrix builds a Matrix from the given source. Grants referencing a
// permission outside the closed set are rejected so configuration typos
// surface at startup instead of silently failing checks at runtime.
func NewMatrix(ctx context.Context, src Source) (Matrix, error) {
	if src == nil {
		src = NewInMemSource(DefaultGrants())
	}

	loaded, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadMatrix, err)
	}

	known := make(map[Permission]struct{}, len(AllPermissions))
	for _, p := range AllPermissions {
		known[p] = struct{}{}
	}

	grants := make(map[Role]map[Permission]struct{}, len(loaded))
	for role, perms := range loaded {
		if !role.Valid() {
			return nil, errors.Join(ErrUnknownRole, fmt.Errorf("role %q", role))
		}
		set := make(map[Permission]struct{}, len(perms))
		for _, p := range perms {
			if _, ok := known[p]; !ok {
				return nil, errors.Join(ErrUnknownPermission, fmt.Errorf("role %q grants %q", role, p))
			}
			set[p] = struct{}{}
		}
		grants[role] = set
	}

	return &matrix{grants: grants}, nil
}

func (m *matrix) HasPermission(role Role, perm Permission) bool {
	set, ok := m.grants[role]
	if !ok {
		return false
	}
	_, granted := set[perm]
	return granted
}

func (m *matrix) HasAnyPermission(role Role, perms ...Permission) bool {
	set, ok := m.grants[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if _, granted := set[p]; granted {
			return true
		}
	}
	return false
}

func (m *matrix) HasAllPermissions(role Role, perms ...Permission) bool {
	set, ok := m.grants[role]
	if !ok {
		return false
	}
	for _, p := range perms {
		if _, granted := set[p]; !granted {
			return false
		}
	}
	return true
}

func (m *matrix) PermissionsFor(role Role) map[Permission]struct{} {
	set, ok := m.grants[role]
	if !ok {
		return map[Permission]struct{}{}
	}

	out := make(map[Permission]struct{}, len(set))
	for p := range set {
		out[p] = struct{}{}
	}
	return out
}

// DefaultGrants returns the product's built-in role→permission table.
// Staff keeps the front-of-house essentials (ringing up sales, looking up
// customers) while destructive and financial operations require manager
// or admin. Admin holds the full set.
func DefaultGrants() map[Role][]Permission {
	staff := []Permission{
		PermViewDashboard,
		PermViewProducts,
		PermViewCustomers, PermCreateCustomers,
		PermCreateSales, PermViewTransactions, PermApplyDiscounts,
	}

	manager := []Permission{
		PermViewDashboard,
		PermViewProducts, PermCreateProducts, PermEditProducts,
		PermManageInventory, PermManageCategories,
		PermViewCustomers, PermCreateCustomers, PermEditCustomers,
		PermCreateSales, PermViewTransactions, PermApplyDiscounts,
		PermProcessRefunds, PermVoidTransactions,
		PermViewReports, PermExportData,
		PermInviteMembers,
	}

	admin := make([]Permission, len(AllPermissions))
	copy(admin, AllPermissions)

	return map[Role][]Permission{
		RoleStaff:   staff,
		RoleManager: manager,
		RoleAdmin:   admin,
	}
}
