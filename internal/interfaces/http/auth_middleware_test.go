package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/patoshub/directorio-api/internal/interfaces/http"
	pkgjwt "github.com/patoshub/directorio-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "directorio-api-test"
)

// buildProtectedApp app Fiber mínima con una ruta tras el middleware de auth.
func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":  apphttp.GetUserID(c),
			"username": apphttp.GetUsername(c),
			"role":     apphttp.GetRole(c),
		})
	})
	return app
}

func doProtectedRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// Sin header Authorization → 401.
func TestAuthMiddleware_SinHeader_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Token de acceso requerido", body["error"])
}

// Header sin token tras "Bearer" → 401.
func TestAuthMiddleware_BearerVacio_Retorna401(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Bearer ")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token malformado → 403, no 401: el cliente sí envió algo.
func TestAuthMiddleware_TokenInvalido_Retorna403(t *testing.T) {
	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Token inválido o expirado", body["error"])
}

func TestAuthMiddleware_TokenExpirado_Retorna403(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", "CLIENTE", testIssuer, -1)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_TokenValido_CargaLocals(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "maria", "DUENO", testIssuer, 7)
	require.NoError(t, err)

	app := buildProtectedApp()
	resp := doProtectedRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "maria", body["username"])
	assert.Equal(t, "DUENO", body["role"])
}
