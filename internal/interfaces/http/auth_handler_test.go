package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/stocktrack/internal/interfaces/http"
)

// Profile devuelve los claims con el mismo contrato que el user del login
// (dto.SessionUser): claves id, username y role.
func TestProfile_DevuelveSessionUser(t *testing.T) {
	handler := apphttp.NewAuthHandler(nil) // Profile no usa el caso de uso

	app := fiber.New()
	app.Get("/api/auth/profile", apphttp.AuthMiddleware(testJWTSecret), handler.Profile)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", tokenForRole(t, "ADMIN"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["id"], "la clave debe ser id, no userId")
	assert.Equal(t, testUsername, body["username"])
	assert.Equal(t, "ADMIN", body["role"])
	assert.NotContains(t, body, "userId", "no debe quedar la clave legacy userId")
}
