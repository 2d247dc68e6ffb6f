package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stocktrack/internal/application/auth"
	"github.com/tu-usuario/stocktrack/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ItemUC    *usecase.ItemUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	protectedAuth := authGroup.Group("/", AuthMiddleware(deps.JWTSecret))
	protectedAuth.Get("/profile", authHandler.Profile)

	// Directorio de cuentas: el acceso lo decide la política de dominio
	// (rbac.CanManageUsers). La política por rol objetivo (quién puede crear
	// qué) corre dentro del caso de uso.
	userHandler := NewUserHandler(deps.UserUC)
	manage := protectedAuth.Group("/users", RequireUserManagement())
	manage.Post("/", userHandler.Create)
	manage.Get("/", userHandler.List)
	manage.Patch("/:id/status", userHandler.UpdateStatus)

	// Inventario: cualquier usuario autenticado. Las rutas fijas van antes
	// que /:id para que "stats" y "low-stock" no se capturen como IDs.
	inventory := api.Group("/inventory", AuthMiddleware(deps.JWTSecret))
	inventoryHandler := NewInventoryHandler(deps.ItemUC)
	inventory.Post("/", inventoryHandler.Create)
	inventory.Get("/", inventoryHandler.List)
	inventory.Get("/stats", inventoryHandler.Stats)
	inventory.Get("/low-stock", inventoryHandler.LowStock)
	inventory.Get("/:id", inventoryHandler.GetByID)
	inventory.Patch("/:id", inventoryHandler.Update)
	inventory.Delete("/:id", inventoryHandler.Delete)
}
