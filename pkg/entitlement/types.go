package entitlement

import (
	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/roles"
)

// Reason explains why a check allowed or denied a request. Denials are
// first-class outcomes, not errors: they are displayable and cacheable,
// while genuine faults (store outage, unmapped billing product) are
// returned as errors alongside a zero Decision.
type Reason string

const (
	ReasonAllowed              Reason = "allowed"
	ReasonRolePermissionDenied Reason = "role_permission_denied"
	ReasonPlanFeatureDisabled  Reason = "plan_feature_disabled"
	ReasonQuotaExceeded        Reason = "quota_exceeded"
	ReasonTrialExpired         Reason = "trial_expired"
)

// CheckRequest describes one authorization question: may this actor do
// this inside this organization, optionally consuming resource capacity.
type CheckRequest struct {
	ActorID uuid.UUID
	OrgID   uuid.UUID

	// Permission to verify against the actor's role. Empty skips the
	// role check (plan-only decisions, e.g. showing an upgrade banner).
	Permission roles.Permission

	// Resource, when set, adds a quota check for consuming Delta units.
	Resource plan.Resource

	// Delta is the number of units about to be consumed. Defaults to 1
	// when Resource is set.
	Delta int64
}

// Decision is the engine's verdict. Immutable after construction;
// Current and Limit are populated for quota denials so handlers can
// render a precise message.
type Decision struct {
	Allowed bool
	Reason  Reason

	// Quota diagnostics, valid when Reason == ReasonQuotaExceeded.
	Current int64
	Limit   int64
}

func allow() Decision {
	return Decision{Allowed: true, Reason: ReasonAllowed}
}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

func denyQuota(current, limit int64) Decision {
	return Decision{
		Allowed: false,
		Reason:  ReasonQuotaExceeded,
		Current: current,
		Limit:   limit,
	}
}
