package entitlement

import (
	"github.com/sellora/poskit/pkg/plan"
	"github.com/sellora/poskit/pkg/roles"
)

// DefaultFeatureGates maps permissions to the plan feature that must be
// enabled before the permission is usable. Permissions absent from the
// map are not plan-gated: role and quota checks still apply.
//
// This is configuration data. Gating a new screen behind a plan tier is
// an entry here, not a branch in the engine.
func DefaultFeatureGates() map[roles.Permission]plan.Feature {
	return map[roles.Permission]plan.Feature{
		roles.PermViewFinancialReports: plan.FeatureAdvancedReports,
		roles.PermExportData:           plan.FeatureExportData,
		roles.PermBulkImport:           plan.FeatureBulkImport,
	}
}
