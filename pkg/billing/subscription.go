package billing

import (
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/plan"
)

// Status represents the current state of a subscription.
type Status string

const (
	StatusTrialing  Status = "trialing"
	StatusActive    Status = "active"
	StatusPastDue   Status = "past_due"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// Subscription records an organization's relationship with the billing
// provider. Each organization has at most one subscription; OrgID is the
// primary key.
type Subscription struct {
	OrgID         uuid.UUID
	PlanID        plan.ID
	Status        Status
	ProviderSubID string // provider's subscription ID
	StartedAt     time.Time
	CancelledAt   *time.Time
	UpdatedAt     time.Time
}

// IsActive reports whether the subscription currently entitles the
// organization to its plan. Past-due subscriptions remain entitled:
// dunning is the provider's job and cutting off mid-retry punishes
// transient card failures.
func (s *Subscription) IsActive() bool {
	switch s.Status {
	case StatusActive, StatusTrialing, StatusPastDue:
		return true
	}
	return false
}

// IsCancelled reports whether the subscription has been cancelled.
func (s *Subscription) IsCancelled() bool {
	return s.Status == StatusCancelled
}
