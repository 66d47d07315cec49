package plan

import (
	"context"
	"errors"
	"fmt"
	"strconv"
)

// Catalog holds the product's plan tiers. It is loaded once at startup
// and treated as immutable afterwards, so it is safe to share across
// requests without locking.
type Catalog interface {
	// Get returns the plan for the given ID.
	Get(id ID) (Plan, error)

	// LimitsFor returns the resource ceilings for the given plan.
	LimitsFor(id ID) (map[Resource]int64, error)

	// Verify returns ErrPlanNotFound if the plan ID is not in the catalog.
	Verify(id ID) error

	// Highest returns the most capable tier. Used as the reference plan
	// for organizations inside their trial window.
	Highest() Plan
}

// Source defines how plans are loaded into the catalog.
type Source interface {
	Load(ctx context.Context) (map[ID]Plan, error)
}

type catalog struct {
	// plans is treated as immutable after construction.
	plans   map[ID]Plan
	highest ID
}

// NewCatalog builds a Catalog from the given source. The highest tier is
// the plan whose price amount is largest; it backs trial entitlements.
func NewCatalog(ctx context.Context, src Source) (Catalog, error) {
	if src == nil {
		src = NewInMemSource(DefaultPlans())
	}

	plans, err := src.Load(ctx)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadPlans, err)
	}
	if len(plans) == 0 {
		return nil, errors.Join(ErrInvalidPlanConfiguration, errors.New("catalog is empty"))
	}

	if err := validatePlans(plans); err != nil {
		return nil, err
	}

	var highest ID
	var highestPrice int64 = -1
	for id, p := range plans {
		if p.Price.Amount > highestPrice {
			highest = id
			highestPrice = p.Price.Amount
		}
	}

	return &catalog{plans: plans, highest: highest}, nil
}

func (c *catalog) Get(id ID) (Plan, error) {
	p, ok := c.plans[id]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}

func (c *catalog) LimitsFor(id ID) (map[Resource]int64, error) {
	p, ok := c.plans[id]
	if !ok {
		return nil, ErrPlanNotFound
	}

	limits := make(map[Resource]int64, len(p.Limits))
	for res, limit := range p.Limits {
		limits[res] = limit
	}
	return limits, nil
}

func (c *catalog) Verify(id ID) error {
	if _, ok := c.plans[id]; !ok {
		return ErrPlanNotFound
	}
	return nil
}

func (c *catalog) Highest() Plan {
	return c.plans[c.highest]
}

// IsLimitExceeded reports whether current usage has reached the ceiling.
// Unlimited (-1) never exceeds regardless of current; otherwise the
// boundary is inclusive: current == max is already over.
func IsLimitExceeded(current, max int64) bool {
	if max == Unlimited {
		return false
	}
	return current >= max
}

// FormatLimit renders a ceiling for display. Presentation only, not part
// of the policy surface.
func FormatLimit(max int64) string {
	if max == Unlimited {
		return "unlimited"
	}
	return strconv.FormatInt(max, 10)
}

// validatePlans catches catalog misconfiguration at startup. A ceiling
// below -1 is always a typo, and a sentinel mixed into small positive
// ranges would silently change meaning.
func validatePlans(plans map[ID]Plan) error {
	for id, p := range plans {
		if p.ID != id {
			return errors.Join(ErrInvalidPlanConfiguration,
				fmt.Errorf("plan ID mismatch: map key %s != plan.ID %s", id, p.ID))
		}

		for res, limit := range p.Limits {
			if limit < Unlimited {
				return errors.Join(ErrInvalidPlanConfiguration,
					fmt.Errorf("plan %s has invalid limit for %s: %d", id, res, limit))
			}
		}
	}
	return nil
}

// DefaultPlans returns the product's built-in catalog.
func DefaultPlans() map[ID]Plan {
	return map[ID]Plan{
		Starter: {
			ID:          Starter,
			Name:        "Starter",
			Description: "For single-register shops getting started",
			Limits: map[Resource]int64{
				ResourceProducts:    50,
				ResourceCustomers:   100,
				ResourceTeamMembers: 3,
				ResourceSales:       500,
				ResourceLocations:   1,
			},
			Features: []Feature{
				FeatureEmailAlerts,
				FeatureExportData,
			},
			Price:    Money{Amount: 2900, Currency: "USD"},
			Interval: BillingIntervalMonthly,
			Public:   true,
		},
		Growth: {
			ID:          Growth,
			Name:        "Growth",
			Description: "For growing businesses with bigger catalogs",
			Limits: map[Resource]int64{
				ResourceProducts:    500,
				ResourceCustomers:   1000,
				ResourceTeamMembers: 10,
				ResourceSales:       5000,
				ResourceLocations:   3,
			},
			Features: []Feature{
				FeatureAnalytics,
				FeatureAdvancedReports,
				FeatureEmailAlerts,
				FeatureBulkImport,
				FeatureExportData,
				FeatureCustomerLoyalty,
				FeatureInventoryAlerts,
			},
			Price:    Money{Amount: 7900, Currency: "USD"},
			Interval: BillingIntervalMonthly,
			Public:   true,
		},
		Enterprise: {
			ID:          Enterprise,
			Name:        "Enterprise",
			Description: "For multi-location operations",
			Limits: map[Resource]int64{
				ResourceProducts:    Unlimited,
				ResourceCustomers:   Unlimited,
				ResourceTeamMembers: Unlimited,
				ResourceSales:       Unlimited,
				ResourceLocations:   Unlimited,
			},
			Features: []Feature{
				FeatureAnalytics,
				FeatureAdvancedReports,
				FeatureEmailAlerts,
				FeatureAPIAccess,
				FeatureCustomBranding,
				FeaturePrioritySupport,
				FeatureMultiLocation,
				FeatureBulkImport,
				FeatureExportData,
				FeatureCustomerLoyalty,
				FeatureInventoryAlerts,
				FeatureSalesForecasting,
				FeatureEmailMarketing,
			},
			Price:    Money{Amount: 19900, Currency: "USD"},
			Interval: BillingIntervalMonthly,
			Public:   true,
		},
	}
}
