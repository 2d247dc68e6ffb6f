package http

import (
	"os"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stocktrack/pkg/logger"
)

// RegisterDocs monta la UI de Swagger solo si el archivo de especificación
// existe. El middleware de contrib entra en pánico con el archivo ausente;
// la falta de documentación no debe impedir el arranque de la API, así que
// en ese caso se registra un warning y se sigue sin UI.
func RegisterDocs(app *fiber.App, filePath string, log *logger.Logger) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("file", filePath).Msg("swagger.json no encontrado; se omite la UI de documentación")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "StockTrack API",
	}))
}
