package entitlement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sellora/poskit/pkg/billing"
	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/roles"
	"github.com/sellora/poskit/pkg/usage"
)

// Engine answers "may this actor do this inside this organization".
// It holds no mutable state and starts no background work; every call is
// a pure function of the state read at call time, so it is safe to
// invoke concurrently from many requests and safe to call from read
// paths (deciding whether to render a button) as well as before writes.
//
// Engine decides only. Resource-creating callers must route the actual
// write through a quota.Reserver; re-deriving the check around the write
// reopens the race the reserver exists to close.
type Engine interface {
	// Check runs the role, trial, feature and quota checks in order,
	// short-circuiting on the first denial. A non-nil error is a fault
	// (store outage, misconfiguration), never a policy denial.
	Check(ctx context.Context, req CheckRequest) (Decision, error)

	// EffectivePlan resolves the plan an organization is currently
	// entitled to: the paid plan when an active subscription exists, the
	// trial reference plan inside the trial window, and an error
	// otherwise.
	EffectivePlan(ctx context.Context, orgID uuid.UUID) (plan.Plan, error)

	// TrialDaysRemaining reports the days left in an organization's
	// trial window, zero once elapsed or when a paid plan is active.
	TrialDaysRemaining(ctx context.Context, orgID uuid.UUID) (int, error)
}

// ErrNotEntitled is returned by EffectivePlan when the organization has
// no active subscription and its trial window has elapsed (or never
// started).
var ErrNotEntitled = errors.New("entitlement.errors.not_entitled")

// Option configures the engine.
type Option func(*engine)

// WithTrialDays overrides the trial window length.
func WithTrialDays(days int) Option {
	return func(e *engine) { e.trialDays = days }
}

// WithTrialPlan sets the plan trial organizations evaluate against.
// Defaults to the catalog's highest tier so prospects can exercise the
// whole product before paying.
func WithTrialPlan(id plan.ID) Option {
	return func(e *engine) { e.trialPlan = id }
}

// WithFeatureGates replaces the permission→feature gate map.
func WithFeatureGates(gates map[roles.Permission]plan.Feature) Option {
	return func(e *engine) { e.featureGates = gates }
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *engine) { e.now = now }
}

type engine struct {
	matrix        roles.Matrix
	catalog       plan.Catalog
	subscriptions billing.SubscriptionStore
	memberships   MembershipStore
	organizations OrganizationStore
	counters      usage.Registry

	trialDays    int
	trialPlan    plan.ID // empty means catalog's highest tier
	featureGates map[roles.Permission]plan.Feature
	now          func() time.Time
}

// NewEngine creates an entitlement engine. Panics on nil required
// dependencies to fail fast during initialization.
func NewEngine(
	matrix roles.Matrix,
	catalog plan.Catalog,
	subscriptions billing.SubscriptionStore,
	memberships MembershipStore,
	organizations OrganizationStore,
	counters usage.Registry,
	opts ...Option,
) Engine {
	if matrix == nil {
		panic("entitlement: roles.Matrix is required")
	}
	if catalog == nil {
		panic("entitlement: plan.Catalog is required")
	}
	if subscriptions == nil {
		panic("entitlement: billing.SubscriptionStore is required")
	}
	if memberships == nil {
		panic("entitlement: MembershipStore is required")
	}
	if organizations == nil {
		panic("entitlement: OrganizationStore is required")
	}
	if counters == nil {
		counters = usage.NewRegistry()
	}

	e := &engine{
		matrix:        matrix,
		catalog:       catalog,
		subscriptions: subscriptions,
		memberships:   memberships,
		organizations: organizations,
		counters:      counters,
		trialDays:     plan.DefaultTrialDays,
		featureGates:  DefaultFeatureGates(),
		now:           func() time.Time { return time.Now().UTC() },
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Check runs the four checks in strict order: role, trial/plan
// resolution, feature flag, quota. Cheapest first: the role check can
// be answered from context without touching the store, so the common
// "not permitted at all" case never pays for a usage query.
func (e *engine) Check(ctx context.Context, req CheckRequest) (Decision, error) {
	// 1. Role.
	if req.Permission != "" {
		role, err := e.resolveRole(ctx, req.OrgID, req.ActorID)
		if err != nil {
			if errors.Is(err, ErrMembershipNotFound) {
				// Non-members hold no role; fail closed.
				return deny(ReasonRolePermissionDenied), nil
			}
			return Decision{}, err
		}

		if !e.matrix.HasPermission(role, req.Permission) {
			return deny(ReasonRolePermissionDenied), nil
		}
	}

	// 2. Trial / plan resolution.
	effective, err := e.EffectivePlan(ctx, req.OrgID)
	if err != nil {
		if errors.Is(err, ErrNotEntitled) {
			return deny(ReasonTrialExpired), nil
		}
		return Decision{}, err
	}

	// 3. Feature flag.
	if req.Permission != "" {
		if feature, gated := e.featureGates[req.Permission]; gated && !effective.HasFeature(feature) {
			return deny(ReasonPlanFeatureDisabled), nil
		}
	}

	// 4. Quota.
	if req.Resource != "" {
		delta := req.Delta
		if delta <= 0 {
			delta = 1
		}

		limit := effective.LimitFor(req.Resource)

		current, err := e.counters.Count(ctx, req.OrgID, req.Resource)
		if err != nil {
			return Decision{}, err
		}

		// Projected usage after the delta must stay at or under the
		// ceiling: with delta=1 this denies exactly when current is
		// already at the limit.
		if plan.IsLimitExceeded(current+delta-1, limit) {
			return denyQuota(current, limit), nil
		}
	}

	return allow(), nil
}

func (e *engine) EffectivePlan(ctx context.Context, orgID uuid.UUID) (plan.Plan, error) {
	sub, err := e.subscriptions.Get(ctx, orgID)
	if err != nil && !errors.Is(err, billing.ErrSubscriptionNotFound) {
		return plan.Plan{}, errors.Join(ErrStoreUnavailable, err)
	}

	if sub != nil && sub.IsActive() {
		paid, err := e.catalog.Get(sub.PlanID)
		if err != nil {
			// A subscription pointing at a plan the catalog no longer
			// carries is misconfiguration, not a denial.
			return plan.Plan{}, err
		}
		return paid, nil
	}

	// No paid entitlement; fall back to the trial window.
	org, err := e.organizations.Get(ctx, orgID)
	if err != nil {
		return plan.Plan{}, err
	}

	// Never started a trial or a plan: not entitled to anything gated.
	if org.PlanStartedAt == nil {
		return plan.Plan{}, ErrNotEntitled
	}

	if !plan.IsTrialActive(*org.PlanStartedAt, e.now(), e.trialDays) {
		return plan.Plan{}, ErrNotEntitled
	}

	return e.trialReference()
}

func (e *engine) TrialDaysRemaining(ctx context.Context, orgID uuid.UUID) (int, error) {
	sub, err := e.subscriptions.Get(ctx, orgID)
	if err != nil && !errors.Is(err, billing.ErrSubscriptionNotFound) {
		return 0, errors.Join(ErrStoreUnavailable, err)
	}
	if sub != nil && sub.IsActive() {
		return 0, nil
	}

	org, err := e.organizations.Get(ctx, orgID)
	if err != nil {
		return 0, err
	}
	if org.PlanStartedAt == nil {
		return 0, nil
	}

	return plan.TrialDaysRemaining(*org.PlanStartedAt, e.now(), e.trialDays), nil
}

// resolveRole prefers the role already authenticated into the request
// context; only cold paths pay for a membership lookup.
func (e *engine) resolveRole(ctx context.Context, orgID, actorID uuid.UUID) (roles.Role, error) {
	if role, ok := roles.GetRoleFromContext(ctx); ok {
		return role, nil
	}

	membership, err := e.memberships.Get(ctx, orgID, actorID)
	if err != nil {
		return "", err
	}
	return membership.Role, nil
}

func (e *engine) trialReference() (plan.Plan, error) {
	if e.trialPlan == "" {
		return e.catalog.Highest(), nil
	}
	return e.catalog.Get(e.trialPlan)
}
