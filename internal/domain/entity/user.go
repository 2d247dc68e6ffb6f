package entity

import "time"

// Role rol de un usuario. Orden estricto de privilegio: SUPER_ADMIN > ADMIN > USER.
type Role string

// Roles válidos para User.
const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
)

// Valid indica si el rol pertenece al enum cerrado.
func (r Role) Valid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string    // único en todo el sistema
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Active       bool      // los usuarios inactivos no pueden autenticarse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
