package entity

// Role determina qué operaciones puede ejecutar un usuario.
type Role string

// Roles válidos para User.
const (
	RoleManager   Role = "MANAGER"
	RoleEmployee  Role = "EMPLOYEE"
	RolePurchaser Role = "PURCHASER"
)

// ParseRole valida un rol persistido o transmitido contra los roles conocidos.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleManager, RoleEmployee, RolePurchaser:
		return Role(s), true
	}
	return "", false
}

// User usuario del sistema. Lo crea el proceso de seed (upsert por email que
// solo toca name y role); nunca se elimina.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         Role
	PasswordHash string // bcrypt, nunca plano después de persistir
}
