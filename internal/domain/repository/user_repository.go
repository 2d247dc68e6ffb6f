package repository

import "github.com/tu-usuario/stocktrack/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups devuelven (nil, nil) cuando no hay fila; los errores de
// constraint se traducen a errores de dominio en el adaptador.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// GetActiveByUsername solo encuentra usuarios con Active=true; es el
	// lookup de autenticación (los inactivos nunca se autentican).
	GetActiveByUsername(username string) (*entity.User, error)
	// FindAnyByRole devuelve algún usuario con el rol dado, o nil. Usado por
	// el seed para no duplicar el SUPER_ADMIN inicial.
	FindAnyByRole(role entity.Role) (*entity.User, error)
	List() ([]*entity.User, error)
	// SetActive fija el flag y devuelve la fila actualizada; ErrUserNotFound
	// si el id no existe (UPDATE ... RETURNING sin fila).
	SetActive(id string, active bool) (*entity.User, error)
	// UpdateLastLogin refresca updated_at al autenticarse.
	UpdateLastLogin(id string) error
}
