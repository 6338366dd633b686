package domain

// Operator roles.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// Operator is a terminal user. PasswordHash is bcrypt and never serialized.
type Operator struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"`
}
