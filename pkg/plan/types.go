package plan

// ID identifies a subscription plan tier.
type ID string

const (
	Starter    ID = "starter"
	Growth     ID = "growth"
	Enterprise ID = "enterprise"
)

// Resource represents a countable organization resource type.
type Resource string

const (
	ResourceProducts    Resource = "products"
	ResourceCustomers   Resource = "customers"
	ResourceTeamMembers Resource = "team_members"
	ResourceSales       Resource = "sales" // counted within the current billing period
	ResourceLocations   Resource = "locations"
)

const (
	// Unlimited indicates no ceiling for a resource (-1 chosen for SQL
	// compatibility). Zero is not the same thing: a zero ceiling means the
	// resource is entirely disallowed on the plan.
	Unlimited int64 = -1
)

// Feature represents a plan-gated capability that can be enabled or
// disabled per tier.
type Feature string

const (
	FeatureAnalytics        Feature = "analytics"
	FeatureAdvancedReports  Feature = "advanced_reports"
	FeatureEmailAlerts      Feature = "email_alerts"
	FeatureAPIAccess        Feature = "api_access"
	FeatureCustomBranding   Feature = "custom_branding"
	FeaturePrioritySupport  Feature = "priority_support"
	FeatureMultiLocation    Feature = "multi_location"
	FeatureBulkImport       Feature = "bulk_import"
	FeatureExportData       Feature = "export_data"
	FeatureCustomerLoyalty  Feature = "customer_loyalty"
	FeatureInventoryAlerts  Feature = "inventory_alerts"
	FeatureSalesForecasting Feature = "sales_forecasting"
	FeatureEmailMarketing   Feature = "email_marketing"
)

// Money represents a monetary amount in the smallest currency unit.
// $29.00 USD is Amount: 2900, Currency: "USD".
type Money struct {
	Amount   int64  `yaml:"amount"`
	Currency string `yaml:"currency"`
}

// BillingInterval represents the billing frequency for a plan.
type BillingInterval string

const (
	BillingIntervalNone    BillingInterval = "none"
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalAnnual  BillingInterval = "annual"
)
