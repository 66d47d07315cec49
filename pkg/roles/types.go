package roles

// Role identifies the position a user holds inside one organization.
// Roles are attached to memberships, not to users globally: the same
// user may be an admin in one store and staff in another.
type Role string

const (
	RoleAdmin   Role = "admin" // organization owner
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// Permission is an atomic capability tag. Permissions are flat and
// non-hierarchical: no permission implies another, the matrix lists
// each grant explicitly.
type Permission string

const (
	// Dashboard
	PermViewDashboard Permission = "view_dashboard"

	// Products
	PermViewProducts     Permission = "view_products"
	PermCreateProducts   Permission = "create_products"
	PermEditProducts     Permission = "edit_products"
	PermDeleteProducts   Permission = "delete_products"
	PermManageInventory  Permission = "manage_inventory"
	PermBulkImport       Permission = "bulk_import_products"
	PermManageCategories Permission = "manage_categories"

	// Customers
	PermViewCustomers   Permission = "view_customers"
	PermCreateCustomers Permission = "create_customers"
	PermEditCustomers   Permission = "edit_customers"
	PermDeleteCustomers Permission = "delete_customers"

	// Transactions
	PermCreateSales      Permission = "create_sales"
	PermViewTransactions Permission = "view_transactions"
	PermApplyDiscounts   Permission = "apply_discounts"
	PermProcessRefunds   Permission = "process_refunds"
	PermVoidTransactions Permission = "void_transactions"

	// Reports
	PermViewReports          Permission = "view_reports"
	PermViewFinancialReports Permission = "view_financial_reports"
	PermExportData           Permission = "export_data"

	// Team & settings
	PermManageTeam     Permission = "manage_team"
	PermInviteMembers  Permission = "invite_members"
	PermRemoveMembers  Permission = "remove_members"
	PermChangeRoles    Permission = "change_roles"
	PermManageSettings Permission = "manage_settings"
	PermManageBilling  Permission = "manage_billing"
)

// AllPermissions lists every permission the product knows about.
// Used by sources to validate configuration against the closed set.
var AllPermissions = []Permission{
	PermViewDashboard,
	PermViewProducts, PermCreateProducts, PermEditProducts, PermDeleteProducts,
	PermManageInventory, PermBulkImport, PermManageCategories,
	PermViewCustomers, PermCreateCustomers, PermEditCustomers, PermDeleteCustomers,
	PermCreateSales, PermViewTransactions, PermApplyDiscounts,
	PermProcessRefunds, PermVoidTransactions,
	PermViewReports, PermViewFinancialReports, PermExportData,
	PermManageTeam, PermInviteMembers, PermRemoveMembers, PermChangeRoles,
	PermManageSettings, PermManageBilling,
}
