package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/domain/rbac"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase directorio de cuentas: alta con política de roles, listado y
// activación/desactivación. El hash del password nunca sale en proyecciones.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create crea un usuario en nombre de un actor con rol actorRole. La política
// de roles se consulta ANTES de tocar el store: si falla no se persiste nada.
// Role vacío equivale a USER. Devuelve ErrUsernameTaken si el username existe.
func (uc *UserUseCase) Create(actorRole entity.Role, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := rbac.AuthorizeCreate(actorRole, role); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// List lista todas las cuentas (sin hash).
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// SetActive fija el flag de actividad sin pre-chequeo de existencia; el
// not-found lo reporta el propio store.
func (uc *UserUseCase) SetActive(id string, active bool) (*dto.UserResponse, error) {
	user, err := uc.repo.SetActive(id, active)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene una cuenta por ID (perfil).
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		IsActive:  u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
