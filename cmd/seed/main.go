// Seed idempotente: crea el SUPER_ADMIN inicial si no existe ninguno.
// Es la única vía por la que puede nacer una cuenta SUPER_ADMIN; la API
// rechaza crearlas.
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stocktrack/internal/domain/entity"
	"github.com/tu-usuario/stocktrack/internal/infrastructure/postgres"
	"github.com/tu-usuario/stocktrack/pkg/config"
	"github.com/tu-usuario/stocktrack/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const (
	seedUsername = "superadmin"
	seedPassword = "admin123" // cambiar tras el primer login
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)

	existing, err := userRepo.FindAnyByRole(entity.RoleSuperAdmin)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar super admin existente")
	}
	if existing != nil {
		log.Info().Str("username", existing.Username).Msg("ya existe un super admin, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     seedUsername,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := userRepo.Create(user); err != nil {
		log.Fatal().Err(err).Msg("crear super admin")
	}

	log.Info().
		Str("id", user.ID).
		Str("username", user.Username).
		Msg("super admin creado")
}
