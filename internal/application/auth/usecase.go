package auth

import (
	"github.com/tu-usuario/stocktrack/internal/application/dto"
	"github.com/tu-usuario/stocktrack/internal/domain"
	"github.com/tu-usuario/stocktrack/internal/domain/repository"
	"github.com/tu-usuario/stocktrack/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de credenciales y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate busca un usuario ACTIVO por username y compara el password
// contra el hash bcrypt. Devuelve nil si no hay match; los usuarios inactivos
// nunca se autentican aunque el password sea correcto.
func (uc *AuthUseCase) Authenticate(username, password string) (*dto.SessionUser, error) {
	user, err := uc.userRepo.GetActiveByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil
	}
	return &dto.SessionUser{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}

// Login verifica credenciales, genera el JWT y retorna token + resumen de
// identidad. ErrUnauthorized si Authenticate no devuelve usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.Authenticate(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	// Refresca updated_at como marca de último acceso; el login no depende
	// de que esto funcione.
	_ = uc.userRepo.UpdateLastLogin(user.ID)
	return &dto.LoginResponse{
		AccessToken: token,
		User:        *user,
	}, nil
}
