package plan

import "errors"

// Domain errors for catalog and resolver operations.
var (
	ErrPlanNotFound             = errors.New("plan.errors.plan_not_found")
	ErrUnknownProduct           = errors.New("plan.errors.unknown_product")
	ErrInvalidPlanConfiguration = errors.New("plan.errors.invalid_plan_configuration")
	ErrFailedToLoadPlans        = errors.New("plan.errors.failed_to_load_plans")
)
