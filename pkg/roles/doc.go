// Package roles provides the role-based half of the product's
// authorization decision: a fixed mapping from organization roles
// (admin, manager, staff) to the atomic permissions they grant.
//
// The matrix is pure data. Permissions are flat, non-hierarchical tags;
// nothing is implied, every grant is listed. Checks never return errors:
// an unknown role or ungranted permission simply answers false, so a
// misconfigured caller fails closed rather than open.
//
// Basic usage:
//
//	m, err := roles.NewMatrix(ctx, nil) // built-in grants
//	if m.HasPermission(roles.RoleStaff, roles.PermVoidTransactions) {
//	    // never reached: staff cannot void transactions
//	}
//
// Grants can also come from an operator-managed YAML file:
//
//	m, err := roles.NewMatrix(ctx, roles.NewFileSource("roles.yaml"))
package roles
