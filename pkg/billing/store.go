package billing

import (
	"context"

	"github.com/google/uuid"
)

// SubscriptionStore defines subscription persistence. One subscription
// per organization; OrgID serves as the primary key.
type SubscriptionStore interface {
	// Get retrieves a subscription by organization ID.
	// Returns ErrSubscriptionNotFound if none exists.
	Get(ctx context.Context, orgID uuid.UUID) (*Subscription, error)

	// Save creates or updates a subscription keyed by OrgID.
	Save(ctx context.Context, sub *Subscription) error
}
