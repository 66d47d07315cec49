package entitlement

import (
	"context"

	"github.com/google/uuid"
)

type actorIDCtxKey struct{}
type orgIDCtxKey struct{}

// SetActorIDToContext stores the authenticated actor's ID for
// downstream checks.
func SetActorIDToContext(ctx context.Context, actorID uuid.UUID) context.Context {
	return context.WithValue(ctx, actorIDCtxKey{}, actorID)
}

// GetActorIDFromContext retrieves the actor ID, if present.
func GetActorIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(actorIDCtxKey{}).(uuid.UUID)
	return id, ok
}

// SetOrgIDToContext stores the current organization's ID.
func SetOrgIDToContext(ctx context.Context, orgID uuid.UUID) context.Context {
	return context.WithValue(ctx, orgIDCtxKey{}, orgID)
}

// GetOrgIDFromContext retrieves the organization ID, if present.
func GetOrgIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(orgIDCtxKey{}).(uuid.UUID)
	return id, ok
}
