package roles

import "errors"

// Domain errors for matrix construction. Permission checks themselves
// never error: an unknown role or permission fails closed.
var (
	ErrFailedToLoadMatrix = errors.New("roles.errors.failed_to_load_matrix")
	ErrUnknownRole        = errors.New("roles.errors.unknown_role")
	ErrUnknownPermission  = errors.New("roles.errors.unknown_permission")
	ErrRoleNotInContext   = errors.New("roles.errors.role_not_in_context")
)
