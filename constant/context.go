package constant

type ContextKey string

const (
	UserIDKey   ContextKey = "user_id"
	UserRoleKey ContextKey = "user_role"
)

// UserRole distinguishes storefront clients from back-office admins.
type UserRole string

const (
	RoleClient UserRole = "CLIENT"
	RoleAdmin  UserRole = "ADMIN"
)
