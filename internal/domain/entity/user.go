package entity

// Roles de usuario.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User identidad de sesión. A lo sumo una viva a la vez (sesión actual);
// el logout limpia la sesión, no borra la cuenta.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | staff
}
