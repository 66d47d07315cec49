package entitlement

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/roles"
)

// Membership is the per-organization role assignment for a user.
// Exactly one membership exists per (organization, user) pair; the
// persistent store enforces that with a uniqueness constraint.
type Membership struct {
	OrgID  uuid.UUID
	UserID uuid.UUID
	Role   roles.Role
}

// MembershipStore looks up the actor's membership in an organization.
type MembershipStore interface {
	// Get returns the membership for (orgID, userID).
	// Returns ErrMembershipNotFound if the user does not belong to the
	// organization.
	Get(ctx context.Context, orgID, userID uuid.UUID) (*Membership, error)
}

// Organization carries the fields the engine needs for plan resolution.
type Organization struct {
	ID uuid.UUID

	// PlanStartedAt marks trial start or subscription start. Nil means
	// the organization never started anything; the engine treats that as
	// not entitled to any gated capability.
	PlanStartedAt *time.Time
}

// OrganizationStore looks up organizations.
type OrganizationStore interface {
	// Get returns the organization, or ErrOrganizationNotFound.
	Get(ctx context.Context, orgID uuid.UUID) (*Organization, error)
}
