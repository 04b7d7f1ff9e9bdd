package domain

// Roles accepted by the API. The core never checks roles itself; it
// trusts the already-gated caller.
const (
	RoleOwner   = "owner"
	RoleCashier = "cashier"
)

type User struct {
	ID        int64  `json:"id" db:"id"`
	Username  string `json:"username" db:"username"`
	Email     string `json:"email" db:"email"`
	Password  string `json:"password,omitempty" db:"password"`
	Role      string `json:"role" db:"role"`
	CreatedAt string `json:"created_at,omitempty" db:"created_at"`
}
