package http_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/stocktrack/internal/interfaces/http"
	"github.com/tu-usuario/stocktrack/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

// Sin swagger.json en disco la API debe arrancar y responder igual; la
// documentación es opcional, no un requisito de arranque.
func TestRegisterDocs_SinArchivoLaAPISigueFuncionando(t *testing.T) {
	app := fiber.New()

	require.NotPanics(t, func() {
		apphttp.RegisterDocs(app, filepath.Join(t.TempDir(), "swagger.json"), testLogger())
	}, "la ausencia del spec no debe tumbar el arranque")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"las rutas normales deben servir aunque no haya documentación")
}

// Con el spec presente se monta la UI en /docs.
func TestRegisterDocs_ConArchivoSirveLaUI(t *testing.T) {
	specPath := filepath.Join(t.TempDir(), "swagger.json")
	spec := `{"swagger":"2.0","info":{"title":"StockTrack API","version":"1.0"},"paths":{}}`
	require.NoError(t, os.WriteFile(specPath, []byte(spec), 0o644))

	app := fiber.New()
	apphttp.RegisterDocs(app, specPath, testLogger())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/docs", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode, "la UI de docs debe responder")
}
