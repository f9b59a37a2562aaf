package auth

// Role is the closed set of staff roles. Route guards switch on it; there is
// no free-form role string past login.
type Role string

const (
	RoleWaiter      Role = "waiter"
	RoleCashier     Role = "cashier"
	RoleManager     Role = "manager"
	RoleAccountant  Role = "accountant"
	RoleDirector    Role = "director"
	RoleProcurement Role = "procurement"
	RoleAdmin       Role = "admin"
)

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Username string
	Password string
	Role     Role
}
