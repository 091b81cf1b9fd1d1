package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Pagination. The listing pages are fixed at 5 records per page.
	DefaultPage = 1
	PageSize    = 5

	// Upload limits
	MaxPhotoUploadBytes = 100 << 20 // 100 MiB, matches the member edit form limit
	MaxImportRows       = 10000
	ImportHeaderRow     = 1
	ImportFirstDataRow  = 2
	ImportColumnCount   = 4

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeySessionID = "session_id"

	// Roles
	RoleAdmin  = "admin"
	RoleMember = "member"

	// Status catalog labels. StatusPending is the auto-seeded initial state
	// of every ticket.
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusResolved   = "Resolved"

	// Derived-status filter values for ticket listings
	TicketFilterActive   = "Active"
	TicketFilterResolved = "Resolved"
	TicketFilterAll      = "All"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
)
