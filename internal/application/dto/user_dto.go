package dto

import (
	"time"

	"github.com/tu-usuario/stocktrack/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario (password en texto, se
// hashea en el caso de uso). Role vacío equivale a USER.
type CreateUserRequest struct {
	Username string      `json:"username" validate:"required,min=1"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     entity.Role `json:"role" validate:"omitempty,oneof=ADMIN USER"`
	IsActive *bool       `json:"isActive"`
}

// UpdateUserStatusRequest entrada para activar/desactivar una cuenta.
type UpdateUserStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// UserResponse salida de un usuario. Nunca incluye el hash del password.
type UserResponse struct {
	ID        string      `json:"id"`
	Username  string      `json:"username"`
	Role      entity.Role `json:"role"`
	IsActive  bool        `json:"isActive"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SessionUser resumen de identidad/rol que acompaña al token.
type SessionUser struct {
	ID       string      `json:"id"`
	Username string      `json:"username"`
	Role     entity.Role `json:"role"`
}

// LoginResponse salida con el token JWT firmado.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        SessionUser `json:"user"`
}
