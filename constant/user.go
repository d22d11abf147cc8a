package constant

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserRoleKey contextKey = "user_role"
)

type UserRole string

const (
	UserRoleCustomer   UserRole = "CUSTOMER"
	UserRoleHubManager UserRole = "HUB_MANAGER"
	UserRoleAdmin      UserRole = "ADMIN"
)
