package plan

import "slices"

// Plan describes a subscription tier and its resource/feature
// constraints. Entries are data, not logic: adding a tier is a catalog
// change, never a new code branch in the decision path.
type Plan struct {
	ID          ID                 `yaml:"id"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Limits      map[Resource]int64 `yaml:"limits"`   // -1 represents unlimited
	Features    []Feature          `yaml:"features"` // flags enabled for this tier
	Price       Money              `yaml:"price"`
	Interval    BillingInterval    `yaml:"interval"`
	Public      bool               `yaml:"public"` // available for self-service signup
}

// HasFeature reports whether the feature flag is enabled on this plan.
func (p Plan) HasFeature(f Feature) bool {
	return slices.Contains(p.Features, f)
}

// LimitFor returns the ceiling for a resource. Resources the plan does
// not mention are disallowed (zero), matching the conservative default
// for unconfigured capabilities.
func (p Plan) LimitFor(res Resource) int64 {
	limit, ok := p.Limits[res]
	if !ok {
		return 0
	}
	return limit
}
