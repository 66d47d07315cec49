package billing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

// EventType identifies a normalized billing lifecycle event. The
// checkout flow and webhook signature verification live with the billing
// integration; this package only consumes events that integration has
// already verified and normalized.
type EventType string

const (
	EventSubscriptionCreated   EventType = "subscription_created"
	EventSubscriptionUpdated   EventType = "subscription_updated"
	EventSubscriptionCancelled EventType = "subscription_cancelled"
	EventPaymentFailed         EventType = "payment_failed"
)

// Event is a normalized billing event carrying the provider's product
// identifier. The product ID is resolved to an internal plan through the
// catalog's ProductMap; an unmapped ID is a fault, not a grant.
type Event struct {
	Type           EventType
	OrgID          uuid.UUID
	ProductID      string // provider's product/price identifier
	SubscriptionID string // provider's subscription identifier
	Status         Status
	OccurredAt     time.Time
}

// Service applies billing events to subscription state.
type Service struct {
	products *plan.ProductMap
	store    SubscriptionStore
}

// NewService creates a billing service. Panics on nil dependencies to
// fail fast during initialization.
func NewService(products *plan.ProductMap, store SubscriptionStore) *Service {
	if products == nil {
		panic("billing: ProductMap is required")
	}
	if store == nil {
		panic("billing: SubscriptionStore is required")
	}
	return &Service{products: products, store: store}
}

// ApplyEvent updates subscription state from a normalized billing event.
// Plan resolution happens here, once, so every downstream entitlement
// check works with internal plan IDs only.
func (s *Service) ApplyEvent(ctx context.Context, event Event) error {
	if event.OrgID == uuid.Nil {
		return errors.Join(ErrInvalidEvent, errors.New("missing organization ID"))
	}

	switch event.Type {
	case EventSubscriptionCreated:
		planID, err := s.products.Resolve(event.ProductID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		sub := &Subscription{
			OrgID:         event.OrgID,
			PlanID:        planID,
			Status:        event.Status,
			ProviderSubID: event.SubscriptionID,
			StartedAt:     now,
			UpdatedAt:     now,
		}
		if sub.Status == "" {
			sub.Status = StatusActive
		}

		if err := s.store.Save(ctx, sub); err != nil {
			return fmt.Errorf("failed to save subscription: %w", err)
		}

	case EventSubscriptionUpdated:
		planID, err := s.products.Resolve(event.ProductID)
		if err != nil {
			return err
		}

		sub, err := s.store.Get(ctx, event.OrgID)
		if err != nil {
			return fmt.Errorf("subscription not found for org %s: %w", event.OrgID, err)
		}

		sub.PlanID = planID
		if event.Status != "" {
			sub.Status = event.Status
		}
		sub.UpdatedAt = time.Now().UTC()

		if err := s.store.Save(ctx, sub); err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

	case EventSubscriptionCancelled:
		sub, err := s.store.Get(ctx, event.OrgID)
		if err != nil {
			return fmt.Errorf("subscription not found for org %s: %w", event.OrgID, err)
		}

		now := time.Now().UTC()
		sub.Status = StatusCancelled
		sub.CancelledAt = &now
		sub.UpdatedAt = now

		if err := s.store.Save(ctx, sub); err != nil {
			return fmt.Errorf("failed to cancel subscription: %w", err)
		}

	case EventPaymentFailed:
		sub, err := s.store.Get(ctx, event.OrgID)
		if err != nil {
			if errors.Is(err, ErrSubscriptionNotFound) {
				return nil
			}
			return fmt.Errorf("failed to get subscription: %w", err)
		}

		sub.Status = StatusPastDue
		sub.UpdatedAt = time.Now().UTC()

		if err := s.store.Save(ctx, sub); err != nil {
			return fmt.Errorf("failed to update subscription status: %w", err)
		}

	default:
		return errors.Join(ErrInvalidEvent, fmt.Errorf("unknown event type %q", event.Type))
	}

	return nil
}
